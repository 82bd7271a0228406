// Package window implements partitioned, ordered analytics over in-memory
// tables: ranking (ROW_NUMBER, RANK, DENSE_RANK), offset access (LAG, LEAD),
// and frame-bounded aggregation (SUM, AVG, COUNT, MIN, MAX).
//
// All evaluation goes through a partition index built once per
// partition-by/order-by pair and reused across evaluators:
//
//	ix, err := window.BuildIndex(tbl, window.PartitionKey{"dept"}, []window.OrderKey{
//	    {Column: "salary", Dir: window.Desc, Nulls: window.NullsLast},
//	})
//	ranks := ix.DenseRank()
//	totals, err := ix.Aggregate("salary", window.AggSum, window.RunningTotal())
//
// Result columns align with the input table's row order, so they can be
// appended with Table.WithColumn or filtered positionally.
//
// Evaluators never mutate the input table, and the index holds no state
// beyond row positions; partitions are independent, which Evaluator exploits
// for parallel per-partition execution.
package window
