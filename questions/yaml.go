package questions

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDoc is the on-disk questionnaire shape:
//
//	questions:
//	  - type: truefalse
//	    text: The sky is blue.
//	    correct: "True"
//	  - type: multiplechoice
//	    text: Pick the prime.
//	    correct: "2"
//	    options: [four, five, six]
type yamlDoc struct {
	Questions []yamlQuestion `yaml:"questions"`
}

type yamlQuestion struct {
	Type    string   `yaml:"type"`
	Text    string   `yaml:"text"`
	Correct string   `yaml:"correct"`
	Options []string `yaml:"options"`
}

// LoadYAML reads a questionnaire document. Questions keep the document
// order; call Sort for the canonical kind ordering. Any invalid entry
// fails the whole load with an error wrapping ErrBadQuestion.
func LoadYAML(r io.Reader) (*Questionnaire, error) {
	var doc yamlDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("questions: decoding questionnaire: %w", err)
	}

	bank := &Questionnaire{}
	for i, yq := range doc.Questions {
		question, err := yq.build()
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		bank.Add(question)
	}

	return bank, nil
}

func (yq yamlQuestion) build() (Question, error) {
	switch yq.Type {
	case "truefalse":
		return NewTrueFalse(yq.Text, yq.Correct)
	case "multiplechoice":
		return NewMultipleChoice(yq.Text, yq.Correct, yq.Options...)
	case "multipleselect":
		return NewMultipleSelect(yq.Text, yq.Correct, yq.Options...)
	case "likert":
		return NewLikert(yq.Text)
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrBadQuestion, yq.Type)
	}
}
