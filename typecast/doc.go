// Package typecast answers whether values of one type can be turned into
// another with a plain Go assignment or conversion expression.
package typecast
