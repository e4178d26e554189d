// Package config 加载 fht-analyzer.yaml。
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/rule"
)

// FileName 是未指定路径时在分析根目录下查找的配置文件名。
const FileName = "fht-analyzer.yaml"

// ErrInvalidConfig 包装所有校验失败。
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

// Config 是分析器配置，零值字段取默认值。
type Config struct {
	Language        string           `yaml:"language" validate:"required,oneof=csharp java go"`
	NamespaceRoot   string           `yaml:"namespace_root" validate:"required"`
	MarkerAttribute string           `yaml:"marker_attribute" validate:"required"`
	Workers         int              `yaml:"workers" validate:"gte=0,lte=1024"`
	ExcludeDirs     []string         `yaml:"exclude_dirs" validate:"dive,required"`
	DisabledRules   []string         `yaml:"disabled_rules" validate:"dive,oneof=FHT_InheritanceCheck FHT_StringLiteralCheck"`
	CallSites       []CallSiteConfig `yaml:"call_sites" validate:"dive"`
}

// CallSiteConfig 是字符串字面量调用点表中的一项。
type CallSiteConfig struct {
	Pattern  string `yaml:"pattern" validate:"required"`
	Position int    `yaml:"position" validate:"gte=0"`
}

// Default 返回没有配置文件时使用的配置。
func Default() *Config {
	cfg := &Config{
		Language:        string(model.LangCSharp),
		NamespaceRoot:   rule.DefaultNamespaceRoot,
		MarkerAttribute: rule.DefaultMarkerAttribute,
		ExcludeDirs:     []string{"bin", "obj", ".git", ".vs", "node_modules"},
	}
	for _, cs := range rule.DefaultCallSites() {
		cfg.CallSites = append(cfg.CallSites, CallSiteConfig{Pattern: cs.Pattern, Position: cs.Position})
	}
	return cfg
}

// Path 返回分析根目录对应的默认配置路径。
func Path(root string) string {
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		root = filepath.Dir(root)
	}
	return filepath.Join(root, FileName)
}

// Load 读取 path。文件不存在时返回默认配置，文件中留空的字段用默认值补齐。
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(content)
}

// Parse 解码 YAML 内容，拒绝未知字段。
func Parse(content []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.applyDefaults(Default())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults(def *Config) {
	if c.Language == "" {
		c.Language = def.Language
	}
	if c.NamespaceRoot == "" {
		c.NamespaceRoot = def.NamespaceRoot
	}
	if c.MarkerAttribute == "" {
		c.MarkerAttribute = def.MarkerAttribute
	}
	if c.ExcludeDirs == nil {
		c.ExcludeDirs = def.ExcludeDirs
	}
	if c.CallSites == nil {
		c.CallSites = def.CallSites
	}
}

// Validate 校验结构体约束并编译调用点模式。
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.CompileCallSites(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// CompileCallSites 按文件中的顺序编译调用点表。
func (c *Config) CompileCallSites() ([]rule.CallSite, error) {
	out := make([]rule.CallSite, 0, len(c.CallSites))
	for _, cs := range c.CallSites {
		compiled, err := rule.NewCallSite(cs.Pattern, cs.Position)
		if err != nil {
			return nil, err
		}
		out = append(out, compiled)
	}
	return out, nil
}

// RuleSettings 将配置转换为内置规则设置。
func (c *Config) RuleSettings() (rule.Settings, error) {
	sites, err := c.CompileCallSites()
	if err != nil {
		return rule.Settings{}, err
	}
	return rule.Settings{
		NamespaceRoot:   c.NamespaceRoot,
		MarkerAttribute: c.MarkerAttribute,
		CallSites:       sites,
		Disabled:        append([]string(nil), c.DisabledRules...),
	}, nil
}
