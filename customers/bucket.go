package customers

// Bucket is the lifecycle an order is generated into. The bucket decides
// which optional fields an order carries, so the variant rules live here
// rather than on ad-hoc flags.
type Bucket string

const (
	BucketCompleted Bucket = "completed"
	BucketPending   Bucket = "pending"
	BucketCurrent   Bucket = "current"
)

// tipRate is nonzero only for completed orders.
func (b Bucket) tipRate() float64 {
	if b == BucketCompleted {
		return 0.10
	}
	return 0
}

// hasReceipt reports whether a receipt exists yet. Pending orders have none.
func (b Bucket) hasReceipt() bool {
	return b != BucketPending
}

// fillerStatus reports whether the order carries a status field. The value
// is an arbitrary capitalized word, sample filler rather than a state enum.
func (b Bucket) fillerStatus() bool {
	return b != BucketCompleted
}
