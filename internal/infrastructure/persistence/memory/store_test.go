package memory_test

import (
	"testing"

	"jobmatch/internal/infrastructure/persistence/memory"
	"jobmatch/internal/repository"
	"jobmatch/internal/repository/repositorytest"
)

func TestStoreContract(t *testing.T) {
	repositorytest.Run(t, func(*testing.T) repository.Store { return memory.New() })
}
