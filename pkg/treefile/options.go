package treefile

import "github.com/joshuapare/pathtree/pkg/tree"

// OperationOptions controls file operations. A nil *OperationOptions is
// the same as the zero value.
type OperationOptions struct {
	// Factory builds the trees returned by Load. Nil uses tree.DefaultConfig.
	Factory *tree.Factory

	// CreateBackup copies the existing file to <path>.bak before replacing it.
	CreateBackup bool

	// DryRun performs every step except writing to disk.
	DryRun bool

	// FullSync asks the OS to flush drive caches as well (F_FULLFSYNC on macOS).
	FullSync bool

	// CreateMissing lets SetValue start from an empty tree when the file
	// does not exist.
	CreateMissing bool
}

func (o *OperationOptions) orDefault() *OperationOptions {
	if o == nil {
		return &OperationOptions{}
	}
	return o
}

func (o *OperationOptions) newTree() *tree.Tree {
	if o.Factory != nil {
		return o.Factory.New()
	}
	return tree.New()
}
