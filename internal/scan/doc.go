// Package scan is the harness between the curve library and whatever
// renders it: it walks an input range in ascending order, evaluates a
// mapping and hands the points or a histogram to a Sink.
package scan
