package rule

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/CodMac/go-treesitter-fht-analyzer/logging"
	"github.com/CodMac/go-treesitter-fht-analyzer/metrics"
	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

// Registry 将规则与节点类别关联，并把节点分发给规则。
//
// 注册应在第一次 Dispatch 之前完成；Dispatch 只读注册表，可被多个 goroutine 调用。
type Registry struct {
	mu     sync.RWMutex
	byKind map[model.NodeKind][]Rule
	byID   map[string]Rule
	order  []Rule
	logger *zap.SugaredLogger
}

// Option 用于配置 Registry。
type Option func(*Registry)

// WithLogger 设置记录规则故障的日志器。
func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry 创建空的注册表。
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byKind: make(map[model.NodeKind][]Rule),
		byID:   make(map[string]Rule),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.OrNop(r.logger)
	return r
}

// Register 将规则与 kinds 关联，未给出 kinds 时使用 rule.Kinds()。
// 同一规则可以为更多类别重复注册；不同规则复用已注册的描述符 id 则返回错误。
// 共享同一描述符指针的规则视为同一规则，因此规则值不要求可比较。
func (r *Registry) Register(rule Rule, kinds ...model.NodeKind) error {
	if len(kinds) == 0 {
		kinds = rule.Kinds()
	}
	if len(kinds) == 0 {
		return fmt.Errorf("%w: %s", ErrNoKinds, rule.Descriptor().ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := rule.Descriptor().ID
	if existing, ok := r.byID[id]; ok && !sameRule(existing, rule) {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, id)
	}
	if _, ok := r.byID[id]; !ok {
		r.byID[id] = rule
		r.order = append(r.order, rule)
	}

	for _, k := range kinds {
		if containsRule(r.byKind[k], rule) {
			continue
		}
		r.byKind[k] = append(r.byKind[k], rule)
	}
	return nil
}

// Rules 按注册顺序返回已注册的规则。
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Rule(nil), r.order...)
}

// Descriptors 返回所有已注册规则的描述符。
func (r *Registry) Descriptors() []*model.RuleDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.RuleDescriptor, 0, len(r.order))
	for _, rule := range r.order {
		out = append(out, rule.Descriptor())
	}
	return out
}

// Kinds 返回至少被一个规则观察的节点类别（已排序）。
func (r *Registry) Kinds() []model.NodeKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.NodeKind, 0, len(r.byKind))
	for k := range r.byKind {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Interested 判断是否有规则观察 kind。
func (r *Registry) Interested(kind model.NodeKind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byKind[kind]) > 0
}

// Dispatch 按注册顺序运行为 node 类别注册的所有规则。
// 返回错误或 panic 的规则会转为 Fault，且它对该节点的诊断全部丢弃；其余规则照常运行。
func (r *Registry) Dispatch(node model.Node, semantic model.SemanticModel, reporter Reporter) []Fault {
	r.mu.RLock()
	rules := r.byKind[node.Kind()]
	r.mu.RUnlock()

	var faults []Fault
	for _, rule := range rules {
		id := rule.Descriptor().ID
		pass := newBufferedPass(node, semantic, reporter)

		metrics.RuleInvocations.WithLabelValues(id).Inc()
		err := invoke(rule, pass)
		if err == nil {
			pass.flush()
			if n := pass.Reported(); n > 0 {
				metrics.Diagnostics.WithLabelValues(id).Add(float64(n))
			}
			continue
		}
		pass.discard()

		metrics.RuleFaults.WithLabelValues(id).Inc()
		loc := node.Location()
		r.logger.Errorw("rule faulted",
			"rule", id,
			"file", loc.FilePath,
			"line", loc.StartLine,
			"error", err,
		)
		faults = append(faults, Fault{RuleID: id, Location: loc, Err: err})
	}
	return faults
}

func invoke(rule Rule, pass *Pass) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrRulePanic, rec)
		}
	}()
	return rule.Inspect(pass)
}

func sameRule(a, b Rule) bool {
	return a.Descriptor() == b.Descriptor()
}

func containsRule(rules []Rule, rule Rule) bool {
	for _, r := range rules {
		if sameRule(r, rule) {
			return true
		}
	}
	return false
}
