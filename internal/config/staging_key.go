package config

import (
	"fmt"
)

type StagingKeyStruct struct{}

func NewStagingKeyStruct() *StagingKeyStruct {
	return &StagingKeyStruct{}
}

// ImportBatchKey returns the Redis key holding a staged import batch
// awaiting confirmation.
func (r *StagingKeyStruct) ImportBatchKey(token string) string {
	return fmt.Sprintf("import:batch:%s", token)
}

var StagingKey = NewStagingKeyStruct()
