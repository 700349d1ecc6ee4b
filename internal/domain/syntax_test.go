package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jenkinslint/jenkinslint/internal/domain"
)

func checkContent(content string) domain.Outcome {
	target := domain.Target{Path: "Jenkinsfile", Content: content}
	return domain.CheckSyntax(target, domain.DefaultMarkers)
}

func TestCheckSyntax_EmptyFile(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t\n  \n"} {
		outcome := checkContent(content)
		assert.Equal(t, domain.StatusInvalid, outcome.Status)
		assert.Equal(t, "empty file", outcome.Message)
	}
}

func TestCheckSyntax_DeclarativePipeline(t *testing.T) {
	outcome := checkContent("pipeline { agent any }")
	assert.Equal(t, domain.StatusValid, outcome.Status)
}

func TestCheckSyntax_ScriptedPipeline(t *testing.T) {
	outcome := checkContent("node('linux') {\n  checkout scm\n}\n")
	assert.Equal(t, domain.StatusValid, outcome.Status)
}

func TestCheckSyntax_IndentedStage(t *testing.T) {
	outcome := checkContent("    stage('Build') {\n        sh 'make'\n    }\n")
	assert.Equal(t, domain.StatusValid, outcome.Status)
}

func TestCheckSyntax_CRLFLineEndings(t *testing.T) {
	outcome := checkContent("node\r\n{\r\n  checkout scm\r\n}\r\n")
	assert.Equal(t, domain.StatusValid, outcome.Status)

	outcome = checkContent("pipeline {\r\n  agent any\r\n}\r\n")
	assert.Equal(t, domain.StatusValid, outcome.Status)
}

func TestCheckSyntax_NoDeclaration(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain groovy", "def call() {\n  echo 'hi'\n}\n"},
		{"marker mid-line only", "echo 'pipeline'\n"},
		{"marker as prefix of longer word", "pipelineHelper()\n"},
		{"wrong case", "Pipeline { agent any }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := checkContent(tt.content)
			assert.Equal(t, domain.StatusInvalid, outcome.Status)
			assert.Equal(t, "no pipeline declaration found", outcome.Message)
		})
	}
}

func TestCheckSyntax_CustomMarkers(t *testing.T) {
	target := domain.Target{Path: "vars/lib.groovy", Content: "@Library('shared') _\n"}
	outcome := domain.CheckSyntax(target, []string{"@Library"})
	assert.Equal(t, domain.StatusValid, outcome.Status)
}
