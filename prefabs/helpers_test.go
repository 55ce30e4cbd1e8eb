package prefabs

import "gopkg.in/yaml.v3"

func yamlUnmarshal(s string, out any) error {
	return yaml.Unmarshal([]byte(s), out)
}
