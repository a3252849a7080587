package conf

// DefaultBuckets - Number of buckets a bucket map gets when no capacity is given
const DefaultBuckets int = 32

// MinBuckets - Smallest permitted number of buckets, a single bucket degenerates into one chain
const MinBuckets int = 1

// MinGrowCapacity - Capacity an empty array backed buffer grows to on its first overflow
const MinGrowCapacity int = 4

// GrowFactor - Factor by which a full array backed buffer grows
const GrowFactor int = 2
