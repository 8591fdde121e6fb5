// Package verify checks generated populations against the Gaussian they
// were drawn from: summary statistics, percentiles, integer-bucket
// histograms and the expected bell-curve histogram.
package verify
