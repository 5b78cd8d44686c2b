// Package yaml loads stop-word lists from YAML files.
package yaml

import (
	"os"

	"github.com/fwojciec/wordfreq"
	"gopkg.in/yaml.v3"
)

// StopList is the file format of a stop-word list:
//
//	terms:
//	  - the
//	  - 的
type StopList struct {
	Terms []string `yaml:"terms"`
}

// LoadStopWords reads a stop-word list from path.
func LoadStopWords(path string) (wordfreq.StopWords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseStopWords(data)
}

// ParseStopWords decodes a stop-word list. An empty document yields an
// empty set.
func ParseStopWords(data []byte) (wordfreq.StopWords, error) {
	var sl StopList
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "invalid stop-word list: %v", err)
	}
	return wordfreq.NewStopWords(sl.Terms...), nil
}
