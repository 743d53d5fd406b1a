package tui

import (
	"github.com/kakimtched/cs50p-final-project/internal/pipeline"
)

type weeksLoadedMsg struct {
	result pipeline.Result
}

type loadErrMsg struct {
	err error
}

type openErrMsg struct {
	err error
}
