package ethermaker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/io7m-com/ethermaker/pkg/util/xmac"
)

// Format 结果输出格式。
type Format string

const (
	// FormatText 每行一条人类可读的记录。
	FormatText Format = "text"

	// FormatJSON 每行一个 JSON 值（JSON Lines）。
	FormatJSON Format = "json"
)

// ParseFormat 解析输出格式名称（大小写不敏感，空字符串视为 text）。
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// Write 按 format 将地址逐行写入 w，保持切片顺序。
//
// text 格式输出规范的冒号分隔形式，json 格式每行输出一个 JSON 字符串。
func Write(w io.Writer, addrs []xmac.Addr, format Format) error {
	bw := bufio.NewWriter(w)
	for _, a := range addrs {
		switch format {
		case FormatText:
			if _, err := bw.WriteString(a.String()); err != nil {
				return err
			}
		case FormatJSON:
			data, err := json.Marshal(a)
			if err != nil {
				return err
			}
			if _, err := bw.Write(data); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w %q", ErrUnknownFormat, format)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
