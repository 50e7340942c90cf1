package web

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/MarongHappy/Uranium/config"
	"github.com/MarongHappy/Uranium/export"
	"github.com/MarongHappy/Uranium/operations"
	"github.com/MarongHappy/Uranium/scene"
	"github.com/MarongHappy/Uranium/status"
	"github.com/MarongHappy/Uranium/utils"
	"github.com/MarongHappy/Uranium/webutils"
)

type nodeView struct {
	Name     string
	Position [3]float64
	Rotation [4]float64
	Scale    [3]float64
	Children []nodeView `json:",omitempty"`
}

func viewOfNode(n *scene.SceneNode) nodeView {
	t := n.LocalTransformation()
	v := nodeView{
		Name:     n.Name(),
		Position: t.Position,
		Rotation: [4]float64{t.Rotation.X(), t.Rotation.Y(), t.Rotation.Z(), t.Rotation.W},
		Scale:    t.Scale,
	}
	for _, c := range n.Children() {
		v.Children = append(v.Children, viewOfNode(c))
	}
	return v
}

func findNode(r *http.Request) (*scene.SceneNode, error) {
	name := mux.Vars(r)["name"]
	node := ServerRoot.Find(name)
	if node == nil {
		return nil, errors.Errorf("Failed to find node %q", name)
	}
	return node, nil
}

func HandlerAjaxScene(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, viewOfNode(ServerRoot))
}

func HandlerAjaxNode(w http.ResponseWriter, r *http.Request) {
	node, err := findNode(r)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteJson(w, viewOfNode(node))
}

func parseScaleMode(s string) (operations.ScaleMode, error) {
	switch strings.ToLower(s) {
	case "", "multiply":
		return operations.ScaleModeMultiply, nil
	case "set":
		return operations.ScaleModeSet, nil
	case "add":
		return operations.ScaleModeAdd, nil
	case "relative":
		return operations.ScaleModeRelative, nil
	}
	return 0, errors.Errorf("Unknown scale mode %q", s)
}

func parseSpace(s string) (scene.TransformSpace, error) {
	switch strings.ToLower(s) {
	case "local":
		return scene.TransformSpaceLocal, nil
	case "", "parent":
		return scene.TransformSpaceParent, nil
	case "world":
		return scene.TransformSpaceWorld, nil
	}
	return 0, errors.Errorf("Unknown transform space %q", s)
}

func HandlerActionScale(w http.ResponseWriter, r *http.Request) {
	node, err := findNode(r)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	var req struct {
		Scale  [3]float64
		Mode   string
		Around *[3]float64
		Snap   bool
	}
	if err := webutils.ReadJsonBody(r, &req); err != nil {
		webutils.WriteError(w, err)
		return
	}

	mode, err := parseScaleMode(req.Mode)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	opts := []operations.ScaleOption{operations.ScaleMinimum(config.Get().MinScale)}
	if req.Around != nil {
		opts = append(opts, operations.ScaleAroundPoint(mgl64.Vec3(*req.Around)))
	}
	if req.Snap {
		opts = append(opts, operations.ScaleSnap(),
			operations.ScaleSnapPrecision(config.Get().SnapPrecision))
	}

	op := operations.NewScaleOperation(node, mgl64.Vec3(req.Scale), mode, opts...)
	ServerStack.Push(op)
	log.Printf("[web] %v", op)

	webutils.WriteJson(w, viewOfNode(node))
}

func HandlerActionTranslate(w http.ResponseWriter, r *http.Request) {
	node, err := findNode(r)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	var req struct {
		Translation [3]float64
		Space       string
	}
	if err := webutils.ReadJsonBody(r, &req); err != nil {
		webutils.WriteError(w, err)
		return
	}

	space, err := parseSpace(req.Space)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	op := operations.NewTranslateOperation(node, mgl64.Vec3(req.Translation), space)
	ServerStack.Push(op)
	log.Printf("[web] %v", op)

	webutils.WriteJson(w, viewOfNode(node))
}

func HandlerActionUndo(w http.ResponseWriter, r *http.Request) {
	if !ServerStack.Undo() {
		webutils.WriteError(w, errors.Errorf("Nothing to undo"))
		return
	}
	webutils.WriteJson(w, viewOfNode(ServerRoot))
}

func HandlerActionRedo(w http.ResponseWriter, r *http.Request) {
	if !ServerStack.Redo() {
		webutils.WriteError(w, errors.Errorf("Nothing to redo"))
		return
	}
	webutils.WriteJson(w, viewOfNode(ServerRoot))
}

func HandlerDumpNode(w http.ResponseWriter, r *http.Request) {
	node, err := findNode(r)
	if err != nil {
		webutils.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	webutils.WriteResult(w, []byte(utils.SDump(node.LocalTransformation())))
}

func HandlerExportGltf(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.ExportBinary(&buf, export.GLTFDocument(ServerRoot)); err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteFile(w, &buf, "scene.glb")
}

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func HandlerWsStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	status.NewClient(conn)
}
