package ethermaker

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/io7m-com/ethermaker/pkg/observability/xlog"
	"github.com/io7m-com/ethermaker/pkg/util/xmac"
)

// maxLineSize 单行输入的上限。超长行的剩余部分被丢弃，该行按解析失败跳过。
const maxLineSize = 1 << 20

// Stats 一次 Describe 调用的统计。
type Stats struct {
	// Lines 读取的行数，包括空行
	Lines int
	// Described 成功解析并输出的地址数
	Described int
	// Skipped 解析失败被跳过的行数
	Skipped int
}

// Describer 逐行读取 MAC 地址并输出其分类信息。
type Describer struct {
	logger xlog.Logger
	format Format
}

// NewDescriber 创建 Describer。logger 为 nil 时丢弃日志，format 为空时使用 text。
func NewDescriber(logger xlog.Logger, format Format) *Describer {
	if logger == nil {
		logger = xlog.Discard()
	}
	if format == "" {
		format = FormatText
	}
	return &Describer{
		logger: logger.With(xlog.Component("describe")),
		format: format,
	}
}

// description 是 json 格式下的单条记录
type description struct {
	Address      xmac.Addr `json:"address"`
	Organization string    `json:"organization"`
	Multicast    bool      `json:"multicast"`
	Broadcast    bool      `json:"broadcast"`
	Local        bool      `json:"local"`
}

// Describe 从 r 逐行读取地址，向 w 每个地址输出一条记录。
//
// 每行去除首尾不大于 U+0020 的字符，空行被忽略。无法解析的行以 Error 级别记录日志后跳过，
// 不会中止处理。ctx 被取消时在行与行之间停止并返回 ctx.Err()，
// 即使 r 上的读取仍处于阻塞状态。
func (d *Describer) Describe(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	if d.format != FormatText && d.format != FormatJSON {
		return stats, fmt.Errorf("%w %q", ErrUnknownFormat, d.format)
	}
	enc := json.NewEncoder(w)

	lines, scanErr := scanLines(ctx, r)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		var line inputLine
		var ok bool
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			if err := scanErr(); err != nil {
				return stats, fmt.Errorf("ethermaker: read input: %w", err)
			}
			d.logger.Debug(ctx, "input exhausted",
				slog.Int("lines", stats.Lines),
				slog.Int("described", stats.Described),
				slog.Int("skipped", stats.Skipped),
			)
			return stats, nil
		}

		stats.Lines++
		if line.tooLong {
			stats.Skipped++
			d.logger.Error(ctx, "failed to parse address",
				xlog.Line(stats.Lines),
				xlog.Err(fmt.Errorf("%w: limit %d bytes", ErrLineTooLong, maxLineSize)))
			continue
		}
		text := strings.TrimFunc(line.text, func(r rune) bool { return r <= ' ' })
		if text == "" {
			continue
		}

		addr, err := xmac.Parse(text)
		if err != nil {
			stats.Skipped++
			d.logger.Error(ctx, "failed to parse address",
				xlog.Line(stats.Lines), xlog.Input(text), xlog.Err(err))
			continue
		}

		if err := d.write(enc, w, addr); err != nil {
			return stats, fmt.Errorf("ethermaker: write output: %w", err)
		}
		stats.Described++
	}
}

func (d *Describer) write(enc *json.Encoder, w io.Writer, addr xmac.Addr) error {
	if d.format == FormatJSON {
		return enc.Encode(description{
			Address:      addr,
			Organization: addr.Organization(),
			Multicast:    addr.IsMulticast(),
			Broadcast:    addr.IsBroadcast(),
			Local:        addr.IsLocallyAdministered(),
		})
	}
	_, err := fmt.Fprintf(w, "Address: %s, Multicast: %t, Broadcast: %t, Local: %t\n",
		addr, addr.IsMulticast(), addr.IsBroadcast(), addr.IsLocallyAdministered())
	return err
}

// inputLine 是读取到的一行。tooLong 为 true 时 text 为空。
type inputLine struct {
	text    string
	tooLong bool
}

// scanLines 在独立的 goroutine 中读取 r，使调用方能在读取阻塞时响应 ctx。
// 返回的函数仅在 channel 关闭后调用才有意义。
func scanLines(ctx context.Context, r io.Reader) (<-chan inputLine, func() error) {
	out := make(chan inputLine)
	var err error

	go func() {
		defer close(out)
		br := bufio.NewReader(r)
		for {
			line, readErr := readLine(br)
			if readErr != nil && !errors.Is(readErr, io.EOF) {
				err = readErr
				return
			}
			// 末尾没有换行符的空片段不算一行
			if readErr == nil || line.tooLong || line.text != "" {
				select {
				case out <- line:
				case <-ctx.Done():
					return
				}
			}
			if errors.Is(readErr, io.EOF) {
				return
			}
		}
	}()

	return out, func() error { return err }
}

// readLine 读取一行（不含换行符）。超过 maxLineSize 的行读到行尾后整体丢弃。
// 到达输入末尾时返回 io.EOF，此时 line 可能仍包含最后一行。
func readLine(br *bufio.Reader) (inputLine, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > maxLineSize+1 {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		if n := len(buf); n > 0 && buf[n-1] == '\n' {
			buf = buf[:n-1]
		}
		if len(buf) > maxLineSize {
			tooLong = true
			buf = nil
		}
		if tooLong {
			return inputLine{tooLong: true}, err
		}
		return inputLine{text: string(buf)}, err
	}
}
