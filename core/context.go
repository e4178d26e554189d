package core

import (
	"sort"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
	"github.com/CodMac/go-treesitter-fht-analyzer/noisefilter"
)

// TypeDefinition 是从单个文件收集到的一次类型声明。
// partial 类型的每个部分各对应一个定义。
type TypeDefinition struct {
	Name          string
	QualifiedName string
	Namespace     string
	Kind          model.ElementKind
	// ContainerQN 是外层类型的限定名，顶层类型为空。
	ContainerQN string
	// BaseRefs 按顺序记录基类列表中的原始写法。
	BaseRefs   []string
	Attributes []model.Attribute
	Location   model.Location
	File       *FileContext
	// Node 留给提取阶段使用，在文件语法树关闭前有效。
	Node *sitter.Node
}

// ImportEntry 表示 using 指令或 import 声明。
type ImportEntry struct {
	RawImportPath string          `json:"RawImportPath"`
	Alias         string          `json:"Alias"`
	IsWildcard    bool            `json:"IsWildcard"`
	IsStatic      bool            `json:"IsStatic"`
	Location      *model.Location `json:"Location,omitempty"`
}

// FileContext 保存单个已解析文件中的声明。
type FileContext struct {
	FilePath    string
	Language    model.Language
	PackageName string
	Tree        *sitter.Tree
	RootNode    *sitter.Node
	SourceBytes *[]byte
	Definitions []*TypeDefinition
	// Imports 保存命名空间导入，别名单独按键存放。
	Imports []*ImportEntry
	Aliases map[string]*ImportEntry
	mutex   sync.RWMutex
}

func NewFileContext(filePath string, tree *sitter.Tree, sourceBytes *[]byte) *FileContext {
	fc := &FileContext{
		FilePath:    filePath,
		Tree:        tree,
		SourceBytes: sourceBytes,
		Aliases:     make(map[string]*ImportEntry),
	}
	if tree != nil {
		fc.RootNode = tree.RootNode()
	}
	return fc
}

func (fc *FileContext) AddDefinition(def *TypeDefinition) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	def.File = fc
	fc.Definitions = append(fc.Definitions, def)
}

func (fc *FileContext) AddImport(imp *ImportEntry) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	if imp.Alias != "" {
		fc.Aliases[imp.Alias] = imp
		return
	}
	fc.Imports = append(fc.Imports, imp)
}

// Source 返回文件内容。
func (fc *FileContext) Source() []byte {
	if fc.SourceBytes == nil {
		return nil
	}
	return *fc.SourceBytes
}

// Close 释放语法树。
func (fc *FileContext) Close() {
	if fc.Tree != nil {
		fc.Tree.Close()
		fc.Tree = nil
		fc.RootNode = nil
	}
}

// GlobalContext 是同一语言所有文件共享的符号表。
//
// 收集阶段并发注册文件；收集完成后必须调用一次 Link，此后符号表只读。
type GlobalContext struct {
	FileContexts    map[string]*FileContext
	DefinitionsByQN map[string][]*TypeDefinition
	resolver        SymbolResolver
	noise           noisefilter.NoiseFilter
	symbols         map[string]*model.Symbol
	mutex           sync.RWMutex
}

func NewGlobalContext(resolver SymbolResolver, noise noisefilter.NoiseFilter) *GlobalContext {
	if noise == nil {
		noise = &noisefilter.DefaultNoiseFilter{}
	}
	return &GlobalContext{
		FileContexts:    make(map[string]*FileContext),
		DefinitionsByQN: make(map[string][]*TypeDefinition),
		resolver:        resolver,
		noise:           noise,
		symbols:         make(map[string]*model.Symbol),
	}
}

func (gc *GlobalContext) RegisterFileContext(fc *FileContext) {
	gc.mutex.Lock()
	defer gc.mutex.Unlock()

	gc.FileContexts[fc.FilePath] = fc
	for _, def := range fc.Definitions {
		gc.DefinitionsByQN[def.QualifiedName] = append(gc.DefinitionsByQN[def.QualifiedName], def)
	}
}

// Definitions 返回以 qn 注册的全部声明。
func (gc *GlobalContext) Definitions(qn string) []*TypeDefinition {
	gc.mutex.RLock()
	defer gc.mutex.RUnlock()

	return gc.DefinitionsByQN[qn]
}

// Has 判断是否存在以 qn 注册的类型。
func (gc *GlobalContext) Has(qn string) bool {
	return len(gc.Definitions(qn)) > 0
}

func (gc *GlobalContext) BuildQualifiedName(parentQN, name string) string {
	return gc.resolver.BuildQualifiedName(parentQN, name)
}

// ResolveType 在 def 的作用域内解析源码中书写的类型名。
func (gc *GlobalContext) ResolveType(def *TypeDefinition, name string) []*TypeDefinition {
	return gc.resolver.Resolve(gc, def, name)
}

// Link 将 partial 声明合并为符号并解析基类。
//
// 1. 每个限定名对应一个符号，合并所有部分的特性
// 2. 使用第一个声明了基类列表的部分
// 3. 解析第一个基类条目；噪音名称、接口和未知名称的 BaseType 为 nil
func (gc *GlobalContext) Link() {
	gc.mutex.Lock()
	qns := make([]string, 0, len(gc.DefinitionsByQN))
	for qn := range gc.DefinitionsByQN {
		qns = append(qns, qn)
	}
	sort.Strings(qns)

	bases := make(map[string]*TypeDefinition, len(qns))
	for _, qn := range qns {
		defs := gc.DefinitionsByQN[qn]
		sortDefinitions(defs)
		sym := &model.Symbol{
			Name:          defs[0].Name,
			QualifiedName: qn,
			Namespace:     defs[0].Namespace,
			Kind:          defs[0].Kind,
			Location:      defs[0].Location,
		}
		for _, d := range defs {
			sym.Attributes = mergeAttributes(sym.Attributes, d.Attributes)
			if bases[qn] == nil && len(d.BaseRefs) > 0 {
				bases[qn] = d
			}
		}
		gc.symbols[qn] = sym
	}
	gc.mutex.Unlock()

	for _, qn := range qns {
		def := bases[qn]
		if def == nil {
			continue
		}
		gc.symbols[qn].BaseType = gc.resolveBase(def)
	}
}

func (gc *GlobalContext) resolveBase(def *TypeDefinition) *model.Symbol {
	ref := def.BaseRefs[0]
	if gc.noise.IsNoise(ref) {
		return nil
	}
	for _, cand := range gc.resolver.Resolve(gc, def, ref) {
		if cand.QualifiedName == def.QualifiedName || gc.noise.IsNoise(cand.QualifiedName) {
			continue
		}
		if !cand.Kind.IsClassLike() {
			return nil
		}
		return gc.symbols[cand.QualifiedName]
	}
	return nil
}

// Symbol 返回以 qn 注册且已链接的符号。
func (gc *GlobalContext) Symbol(qn string) (*model.Symbol, bool) {
	gc.mutex.RLock()
	defer gc.mutex.RUnlock()

	s, ok := gc.symbols[qn]
	return s, ok
}

// SemanticModel 返回已链接符号表的语义视图。
func (gc *GlobalContext) SemanticModel() model.SemanticModel {
	return semanticModel{gc: gc}
}

func (gc *GlobalContext) RLock() { gc.mutex.RLock() }

func (gc *GlobalContext) RUnlock() { gc.mutex.RUnlock() }

type semanticModel struct {
	gc *GlobalContext
}

func (m semanticModel) DeclaredSymbol(decl *model.ClassDeclaration) (*model.Symbol, bool) {
	if decl == nil {
		return nil, false
	}
	return m.gc.Symbol(decl.QualifiedName)
}

func sortDefinitions(defs []*TypeDefinition) {
	sort.SliceStable(defs, func(i, j int) bool {
		a, b := defs[i].Location, defs[j].Location
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		return a.StartLine < b.StartLine
	})
}

func mergeAttributes(dst, src []model.Attribute) []model.Attribute {
	for _, a := range src {
		dup := false
		for _, d := range dst {
			if d.Name == a.Name {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, a)
		}
	}
	return dst
}
