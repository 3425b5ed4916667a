// Package treefile reads and writes trees stored in binary tree files.
//
// Files hold the output of tree.Tree.MarshalBinary. Load maps the file
// into memory before decoding; Save writes to a temporary file in the same
// directory, flushes it, and renames it over the target so readers never
// observe a partial file.
//
// The one-shot helpers GetValue, SetValue and DeleteKey load a file,
// apply a single change, and save it again:
//
//	err := treefile.SetValue("settings.tree", "display/theme", "dark", &treefile.OperationOptions{
//		CreateBackup: true,
//	})
package treefile
