// Package embedded provides access to data files compiled into the Cookbook binary.
package embedded

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AppInfoData contains the embedded application metadata YAML.
//
//go:embed appinfo.yaml
var AppInfoData []byte

// AppInfo is the application metadata decoded from appinfo.yaml.
type AppInfo struct {
	Name        string `yaml:"name"`
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
}

// LoadAppInfo decodes the embedded application metadata.
func LoadAppInfo() (AppInfo, error) {
	return ParseAppInfo(AppInfoData)
}

// ParseAppInfo decodes application metadata from YAML. A name is required.
func ParseAppInfo(data []byte) (AppInfo, error) {
	var info AppInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return AppInfo{}, fmt.Errorf("failed to parse app info: %w", err)
	}
	if info.Name == "" {
		return AppInfo{}, fmt.Errorf("app info is missing a name")
	}
	return info, nil
}
