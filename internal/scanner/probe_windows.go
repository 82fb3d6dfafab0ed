//go:build windows

package scanner

import "os"

// probe lstats path and returns its size in 512-byte blocks and whether it
// is a directory. Windows has no st_blocks equivalent in the portable stat
// result, so the logical size is rounded up to whole blocks instead.
func probe(path string) (blocks int64, isDir bool, err error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, false, err
	}
	return (info.Size() + 511) / 512, info.IsDir(), nil
}
