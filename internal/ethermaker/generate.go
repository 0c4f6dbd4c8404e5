package ethermaker

import (
	"context"
	"io"
	"log/slog"

	"github.com/io7m-com/ethermaker/pkg/observability/xlog"
	"github.com/io7m-com/ethermaker/pkg/util/xmac"
)

// GenerateOptions 批量生成的参数。
type GenerateOptions struct {
	// Organization 非 nil 时其前三个八位组覆盖随机生成的前三个八位组
	Organization *xmac.Addr

	// 按 Multicast、Unicast、Local 的顺序强制对应的标志位，
	// 因此 Multicast 与 Unicast 同时为 true 时得到单播地址
	Local     bool
	Unicast   bool
	Multicast bool

	// Count 需要的不重复地址数量，0 表示不生成
	Count int

	// MaxAttempts 随机抽取次数上限，0 表示不限制
	MaxAttempts int

	// Random 随机源，nil 表示 crypto/rand
	Random io.Reader
}

// Generator 批量生成互不重复的 MAC 地址。
type Generator struct {
	opts   GenerateOptions
	logger xlog.Logger
}

// NewGenerator 创建 Generator。logger 为 nil 时丢弃日志。
func NewGenerator(opts GenerateOptions, logger xlog.Logger) *Generator {
	if logger == nil {
		logger = xlog.Discard()
	}
	return &Generator{
		opts:   opts,
		logger: logger.With(xlog.Component("generate")),
	}
}

// Generate 反复抽取随机地址直到得到 Count 个不重复的地址，按首次生成的顺序返回。
//
// 强制标志位之后仍为广播地址的结果被丢弃，不计入结果但计入尝试次数。
// 参数非法时在任何抽取之前返回错误。MaxAttempts 为 0 时循环没有上限，
// 只能通过取消 ctx 打断；每次抽取前都会检查 ctx。
func (g *Generator) Generate(ctx context.Context) ([]xmac.Addr, error) {
	if g.opts.Count < 0 {
		return nil, ErrNegativeCount
	}
	if g.opts.MaxAttempts < 0 {
		return nil, ErrNegativeAttempts
	}

	addrs := make([]xmac.Addr, 0, g.opts.Count)
	seen := make(map[xmac.Addr]struct{}, g.opts.Count)
	attempts := 0

	for len(addrs) < g.opts.Count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if g.opts.MaxAttempts > 0 && attempts >= g.opts.MaxAttempts {
			return nil, &GenerationError{
				Requested: g.opts.Count,
				Generated: len(addrs),
				Attempts:  attempts,
			}
		}
		attempts++

		addr, err := xmac.Generate(g.opts.Organization, g.opts.Random)
		if err != nil {
			return nil, err
		}
		addr = g.force(addr)

		if addr.IsBroadcast() {
			g.logger.Debug(ctx, "discarded broadcast address", slog.Int("attempt", attempts))
			continue
		}
		if _, dup := seen[addr]; dup {
			g.logger.Debug(ctx, "discarded duplicate address",
				slog.Int("attempt", attempts), slog.String("address", addr.String()))
			continue
		}
		seen[addr] = struct{}{}
		addrs = append(addrs, addr)
	}

	g.logger.Debug(ctx, "generation complete",
		xlog.Count(int64(len(addrs))), slog.Int("attempts", attempts))
	return addrs, nil
}

func (g *Generator) force(addr xmac.Addr) xmac.Addr {
	if g.opts.Multicast {
		addr = addr.AsMulticast()
	}
	if g.opts.Unicast {
		addr = addr.AsUnicast()
	}
	if g.opts.Local {
		addr = addr.AsLocallyAdministered()
	}
	return addr
}
