package xconf

// Options 定义配置加载选项。
type Options struct {
	// Delim 配置键的分隔符，默认为 "."。
	Delim string

	// Tag 结构体标签名，默认为 "koanf"。
	Tag string

	// Strict 为 true 时，配置中存在 target 没有的键会导致 Unmarshal 失败。
	Strict bool
}

// Option 定义配置选项函数类型。
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Delim: ".",
		Tag:   "koanf",
	}
}

// WithDelim 设置配置键分隔符。
func WithDelim(delim string) Option {
	return func(o *Options) {
		o.Delim = delim
	}
}

// WithTag 设置结构体标签名。
func WithTag(tag string) Option {
	return func(o *Options) {
		o.Tag = tag
	}
}

// WithStrict 拒绝未知配置键，用于尽早发现拼写错误。
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}
