// Package source resolves parser input into raw markup bytes. The exported
// entry points are used by the public lshw package to obtain report content
// without exposing the file-vs-literal policy or encoding cleanup directly.
package source

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/hwkit/lshwkit/pkg/types"
)

// Resolve interprets input as either a filesystem path or literal markup.
//
// If input names an existing regular file its contents are read and returned;
// a file that exists but cannot be read yields an ErrKindIO error. Any other
// input (no such path, a directory, a stat failure) is treated as literal
// markup. At most one file read is performed.
func Resolve(input string) ([]byte, error) {
	info, err := os.Stat(input)
	if err != nil || !info.Mode().IsRegular() {
		return []byte(input), nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, types.IOErr(fmt.Sprintf("read report %q", input), err)
	}
	return data, nil
}

// Normalize prepares raw report bytes for XML decoding. A UTF-8 byte-order
// mark is stripped and UTF-16 content (detected by BOM) is transcoded to
// UTF-8; anything else passes through unchanged. encoding/xml rejects a
// leading BOM, so this runs before parsing.
func Normalize(data []byte) ([]byte, error) {
	dec := unicode.BOMOverride(encoding.Nop.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, types.ParseErr("decode report encoding", err)
	}
	return out, nil
}
