// Package hmm implements a discrete (multinomial) hidden Markov model:
// Baum–Welch training over several concatenated sequences, scaled forward
// log-likelihood, and Viterbi decoding.
//
// It is the reference trainer plugged into package crossval by the
// metastates command; Trainer adapts it to crossval.Trainer.
//
// Observations are small non-negative integers 0..Symbols-1.  Training is
// deterministic for a given Options.Seed.
//
// Complexity per EM iteration: O(N·K²) time, O(N·K) memory for N samples
// and K states.
package hmm
