package pdf417

import "fmt"

// cluster identifies which of the three disjoint codeword tables encodes a
// row. Rows cycle through the clusters top to bottom, so a reader can tell
// from any single codeword which residue class its row belongs to.
type cluster int

const (
	cluster0 cluster = iota
	cluster1
	cluster2
)

// clusterForRow returns the cluster for a 0-based row number.
func clusterForRow(rowNum int) cluster {
	return cluster(rowNum % 3)
}

// codewordFor translates an abstract codeword value into the physical
// 17-module pattern of the given cluster.
func codewordFor(c cluster, value int) (int, error) {
	if c < cluster0 || c > cluster2 {
		return 0, fmt.Errorf("%w: cluster %d", ErrDomain, c)
	}
	if value < 0 || value > MaxCodewordValue {
		return 0, fmt.Errorf("%w: codeword %d", ErrDomain, value)
	}
	return codewordTable[c][value], nil
}
