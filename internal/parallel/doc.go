// Package parallel runs independent atlas generation jobs on a fixed set
// of goroutines.
//
// Each job owns all of its buffers, so jobs never synchronize with each
// other; the pool only bounds how many run at once. Workers pull from their
// own queue first and steal from the others when it runs dry, which keeps
// long strings from stalling a batch of short ones.
package parallel
