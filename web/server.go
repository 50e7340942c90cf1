package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/MarongHappy/Uranium/operations"
	"github.com/MarongHappy/Uranium/scene"
)

var ServerRoot *scene.SceneNode
var ServerStack *operations.OperationStack

func Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/json/scene", HandlerAjaxScene)
	r.HandleFunc("/json/node/{name}", HandlerAjaxNode)
	r.HandleFunc("/action/node/{name}/scale", HandlerActionScale)
	r.HandleFunc("/action/node/{name}/translate", HandlerActionTranslate)
	r.HandleFunc("/action/undo", HandlerActionUndo)
	r.HandleFunc("/action/redo", HandlerActionRedo)
	r.HandleFunc("/dump/node/{name}", HandlerDumpNode)
	r.HandleFunc("/export/gltf", HandlerExportGltf)
	r.HandleFunc("/ws/status", HandlerWsStatus)
	return r
}

func StartServer(addr string, root *scene.SceneNode, stack *operations.OperationStack) error {
	ServerRoot = root
	ServerStack = stack

	r := Router()
	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
