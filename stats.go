package intkeymap

type Stats struct {
	Size       int
	Capacity   int
	Threshold  int
	LoadFactor float64

	// Buckets holding at least one entry and the length of the longest chain.
	UsedBuckets  int
	LongestChain int
}
