package render

import (
	"fmt"
	"os"

	"github.com/gimlet-io/gerrit-slack/pkg/model"
	"gopkg.in/yaml.v3"
)

// FileConfigs serves project configs from a yaml file
type FileConfigs struct {
	configs map[string]*model.ProjectConfig
}

type configFile struct {
	Projects []yaml.Node `yaml:"projects"`
}

// LoadConfigs reads project configs from a yaml file.
// Omitted settings keep their default values.
func LoadConfigs(path string) (*FileConfigs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %s", err)
	}

	return ParseConfigs(raw)
}

func ParseConfigs(raw []byte) (*FileConfigs, error) {
	var file configFile
	err := yaml.Unmarshal(raw, &file)
	if err != nil {
		return nil, fmt.Errorf("cannot parse config file: %s", err)
	}

	configs := map[string]*model.ProjectConfig{}
	for _, node := range file.Projects {
		config := model.DefaultProjectConfig("")
		err := node.Decode(config)
		if err != nil {
			return nil, fmt.Errorf("cannot parse project config on line %d: %s", node.Line, err)
		}
		if config.Project == "" {
			return nil, fmt.Errorf("project config on line %d has no project name", node.Line)
		}
		configs[config.Project] = config
	}

	return &FileConfigs{configs: configs}, nil
}

// ProjectConfig returns the config of a project, falling back to All-Projects then to the default config
func (f *FileConfigs) ProjectConfig(project string) (*model.ProjectConfig, error) {
	if config, ok := f.configs[project]; ok {
		return config, nil
	}

	if inherited, ok := f.configs[model.AllProjects]; ok {
		config := *inherited
		config.Project = project
		return &config, nil
	}

	return model.DefaultProjectConfig(project), nil
}
