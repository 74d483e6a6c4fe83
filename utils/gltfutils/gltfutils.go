package gltfutils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

func NewDocument() *gltf.Document {
	return gltf.NewDocument()
}

// AddRootNodes puts every node without a parent into the default scene.
func AddRootNodes(doc *gltf.Document) {
	child := make(map[uint32]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[c] = true
		}
	}
	inScene := make(map[uint32]bool)
	for _, n := range doc.Scenes[0].Nodes {
		inScene[n] = true
	}
	for iNode := range doc.Nodes {
		if idx := uint32(iNode); !child[idx] && !inScene[idx] {
			doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, idx)
		}
	}
}

// ExportBinary encodes doc as is, scenes must already be filled.
func ExportBinary(w io.Writer, doc *gltf.Document) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return encoder.Encode(doc)
}

// Save writes doc to path, binary when path ends with .glb.
func Save(doc *gltf.Document, path string) error {
	AddRootNodes(doc)
	if filepath.Ext(path) != ".glb" {
		if err := gltf.Save(doc, path); err != nil {
			return errors.Wrapf(err, "Failed to save gltf %q", path)
		}
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to create %q", path)
	}
	defer f.Close()
	if err := ExportBinary(f, doc); err != nil {
		return errors.Wrapf(err, "Failed to encode %q", path)
	}
	return nil
}
