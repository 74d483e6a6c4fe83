package animcache

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/creature_retargeter/utils"
	"github.com/mogaika/creature_retargeter/utils/gltfutils"
)

var ErrNoRootMotion = errors.New("no root motion data")

// ExportRootMotionGLTF builds a document with one node per clip of project that
// has linked movement. The node mesh is a line strip through the translation
// samples and the node rotation is the final rotation sample.
func (ac *AnimationCache) ExportRootMotionGLTF(project string) (*gltf.Document, error) {
	entry, ok := ac.Entry(project)
	if !ok {
		return nil, errors.Wrapf(ErrProjectNotFound, "%q", project)
	}

	doc := gltfutils.NewDocument()
	for _, clip := range entry.Block.Clips {
		md, ok := ac.Movement(entry.Name, clip.Name)
		if !ok {
			continue
		}

		// the path always starts at the clip origin
		positions := make([][3]float32, 1, len(md.Translations)+1)
		for _, t := range md.Translations {
			positions = append(positions, utils.Vec3ToArray(t.Translation))
		}
		positionAccessor := modeler.WritePosition(doc, positions)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: clip.Name,
			Primitives: []*gltf.Primitive{
				{
					Attributes: map[string]uint32{"POSITION": positionAccessor},
					Mode:       gltf.PrimitiveLineStrip,
				},
			},
		})

		rotation := [4]float32{0, 0, 0, 1}
		if n := len(md.Rotations); n > 0 {
			rotation = utils.QuatToArray(md.Rotations[n-1].Rotation)
		}
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:     clip.Name,
			Mesh:     gltf.Index(uint32(len(doc.Meshes) - 1)),
			Rotation: rotation,
			Scale:    [3]float32{1, 1, 1},
		})
	}

	if len(doc.Nodes) == 0 {
		return nil, errors.Wrapf(ErrNoRootMotion, "%q", project)
	}
	gltfutils.AddRootNodes(doc)
	return doc, nil
}
