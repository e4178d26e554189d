package output

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json"
)

type SarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []SarifRun `json:"runs"`
}

type SarifRun struct {
	Tool              SarifTool               `json:"tool"`
	AutomationDetails *SarifAutomationDetails `json:"automationDetails,omitempty"`
	Results           []SarifResult           `json:"results"`
}

type SarifAutomationDetails struct {
	GUID string `json:"guid"`
}

type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}

type SarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []SarifRule `json:"rules,omitempty"`
}

type SarifRule struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name,omitempty"`
	ShortDescription     SarifMessage      `json:"shortDescription"`
	FullDescription      *SarifMessage     `json:"fullDescription,omitempty"`
	DefaultConfiguration SarifRuleConfig   `json:"defaultConfiguration"`
	Properties           map[string]string `json:"properties,omitempty"`
}

type SarifRuleConfig struct {
	Level string `json:"level"`
}

type SarifResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   SarifMessage    `json:"message"`
	Locations []SarifLocation `json:"locations"`
}

type SarifMessage struct {
	Text string `json:"text"`
}

type SarifLocation struct {
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
}

type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
	Region           SarifRegion           `json:"region"`
}

type SarifArtifactLocation struct {
	URI string `json:"uri"`
}

type SarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// ToolInfo 描述 SARIF 日志的生成工具。
type ToolInfo struct {
	Name    string
	Version string
	URI     string
}

// BuildSARIF 将诊断转换为包含单次 run 的 SARIF 2.1.0 日志。
// 所有描述符都列为规则，无论是否产生结果。
func BuildSARIF(tool ToolInfo, descriptors []*model.RuleDescriptor, diags []model.Diagnostic) SarifLog {
	index := make(map[string]int, len(descriptors))
	rules := make([]SarifRule, 0, len(descriptors))
	for _, d := range descriptors {
		index[d.ID] = len(rules)
		rules = append(rules, sarifRule(d))
	}

	results := make([]SarifResult, 0, len(diags))
	for _, d := range diags {
		id := d.RuleID()
		i, ok := index[id]
		if !ok && d.Descriptor != nil {
			i = len(rules)
			index[id] = i
			rules = append(rules, sarifRule(d.Descriptor))
		}

		start := d.Location.StartLine
		if start <= 0 {
			start = 1
		}
		results = append(results, SarifResult{
			RuleID:    id,
			RuleIndex: i,
			Level:     sevToLevel(d.Severity()),
			Message:   SarifMessage{Text: strings.TrimSpace(d.Message())},
			Locations: []SarifLocation{{
				PhysicalLocation: SarifPhysicalLocation{
					ArtifactLocation: SarifArtifactLocation{URI: toURI(d.Location.FilePath)},
					Region: SarifRegion{
						StartLine:   start,
						StartColumn: d.Location.StartColumn,
						EndLine:     d.Location.EndLine,
						EndColumn:   d.Location.EndColumn,
					},
				},
			}},
		})
	}

	return SarifLog{
		Version: sarifVersion,
		Schema:  sarifSchema,
		Runs: []SarifRun{{
			Tool: SarifTool{Driver: SarifDriver{
				Name:           tool.Name,
				Version:        tool.Version,
				InformationURI: tool.URI,
				Rules:          rules,
			}},
			AutomationDetails: &SarifAutomationDetails{GUID: uuid.NewString()},
			Results:           results,
		}},
	}
}

// WriteSARIF 编码 BuildSARIF 构建的日志。
func WriteSARIF(w io.Writer, tool ToolInfo, descriptors []*model.RuleDescriptor, diags []model.Diagnostic) error {
	data, err := json.MarshalIndent(BuildSARIF(tool, descriptors, diags), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sarif: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write sarif: %w", err)
	}
	return nil
}

func sarifRule(d *model.RuleDescriptor) SarifRule {
	r := SarifRule{
		ID:                   d.ID,
		Name:                 d.Title,
		ShortDescription:     SarifMessage{Text: d.Title},
		DefaultConfiguration: SarifRuleConfig{Level: sevToLevel(d.Severity)},
		Properties:           map[string]string{"category": d.Category},
	}
	if d.Description != "" {
		r.FullDescription = &SarifMessage{Text: d.Description}
	}
	return r
}

func sevToLevel(s model.Severity) string {
	switch s {
	case model.SeverityError:
		return "error"
	case model.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

func toURI(path string) string {
	if strings.TrimSpace(path) == "" {
		return "UNKNOWN"
	}
	return filepath.ToSlash(path)
}
