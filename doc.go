// Package rebalance computes how to rebalance a portfolio of stock holdings
// toward a target allocation.
//
// A Portfolio holds a set of Holding (a name and a number of shares) and the
// fraction of the total value each of them should represent. Given the
// current price per share of every holding, Portfolio.Rebalance returns a
// Report telling, for each holding, whether it is balanced or how much has to
// be sold or bought to reach its target.
//
// The computation is exact (decimal arithmetic) and pure: rendering the
// report is left to the renderer package, and the `rebal` command
// wires both together.
package rebalance
