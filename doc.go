// Package metastates turns per-sample state labels into labeled intervals
// and picks the number of hidden states of a discrete HMM by parallel
// k-fold cross-validation over trials.
//
// 🚀 What is metastates?
//
//	A small set of focused packages:
//		• rle      — run-length interval codec: Encode, Decode, lazy Scan/IterDecode, durations
//		• intv     — point-in-interval queries over boundary lists and explicit spans
//		• fold     — contiguous trial folds and per-fold train/test splits
//		• crossval — bounded worker pool scoring (k, fold) tasks into a ScoreTable
//		• hmm      — discrete HMM: Baum–Welch, log-likelihood, Viterbi
//		• labelio  — label files and interval tables
//		• config   — YAML configuration with defaults and validation
//
// ✨ Guarantees
//
//   - Pure algorithm packages never log and never panic on user input.
//   - Encode and Decode are exact inverses for offset 0.
//   - Cross-validation results do not depend on task completion order.
//   - One failed (k, fold) task never takes down the run.
//
// The metastates command (cmd/metastates) wires them together:
//
//	metastates encode   -i labels.txt
//	metastates infer    -i labels.txt -t 20 -s 4
//	metastates crossval -i labels.txt -t 20 -s 6 -k 5 -j 0
//	metastates query    --bounds 1,4,29 --events 0,4,30
package metastates
