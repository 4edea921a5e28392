// Package batch runs the max-flow solver over edge-list files and reports
// the results.
//
// Each file is solved from node 0 to its last node. Parsing and the
// algorithm are timed separately; the results can be rendered as a
// detailed report (small batches), as one-line summaries, or written to
// CSV:
//
//	File,Nodes,Edges,Max Flow,Parse Time (ms),Algorithm Time (ms),Total Time (ms)
//
// A failed file does not stop the batch: its FileResult carries Err.
package batch
