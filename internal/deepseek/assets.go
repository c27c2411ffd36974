package deepseek

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed templates/system.txt
var systemPrompt string

//go:embed templates/story.txt
var storyPromptTemplate string

var storyPrompt = template.Must(template.New("story").Parse(storyPromptTemplate))

func GetSystemPrompt() string {
	return systemPrompt
}

func GetStoryPrompt(name, location, genre string) (string, error) {
	data := struct {
		Name     string
		Location string
		Genre    string
	}{
		Name:     name,
		Location: location,
		Genre:    genre,
	}

	var buf bytes.Buffer
	if err := storyPrompt.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
