package config

import (
	"gopkg.in/yaml.v3"
)

// yamlParser koanf.Parser 구현입니다. 설정 파일 확장자가 .yaml/.yml 인 경우 사용됩니다.
type yamlParser struct{}

func (yamlParser) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

func (yamlParser) Marshal(m map[string]any) ([]byte, error) {
	return yaml.Marshal(m)
}
