package xconf

import "github.com/knadh/koanf/v2"

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Config 是一次加载得到的只读配置快照。
// 基础查询请直接使用 Client() 返回的 koanf 实例。
type Config interface {
	// Client 返回底层的 koanf 实例。
	Client() *koanf.Koanf

	// Unmarshal 将 path 下的配置解码到 target。
	// path 为空时解码整个配置；配置中缺失的键保留 target 的原值，
	// 因此可以先填充默认值再解码。
	Unmarshal(path string, target any) error

	// Path 返回配置文件路径，从字节数据创建时为空。
	Path() string

	Format() Format
}
