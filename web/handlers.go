package web

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/mogaika/offmesh/off"
	"github.com/mogaika/offmesh/utils/gltfutils"
	"github.com/mogaika/offmesh/webutils"
)

// meshName picks the download base name from the ?name= query.
func meshName(r *http.Request) string {
	name := r.URL.Query().Get("name")
	name = strings.TrimSuffix(name, ".off")
	if name == "" || strings.ContainsAny(name, "\"/\\") {
		return "mesh"
	}
	return name
}

func (s *Server) parseBody(w http.ResponseWriter, r *http.Request) (*off.Document, bool) {
	defer r.Body.Close()

	d, err := off.ParseLimited(r.Body, s.Config.MaxSourceSize)
	if err != nil {
		code := http.StatusBadRequest
		kind := off.KindOf(err)
		if errors.Is(err, off.ErrSourceTooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		s.Status.Error("Failed to parse %s: %v", meshName(r), err)
		webutils.WriteErrorKind(w, code, kind.String(), err)
		return nil, false
	}
	s.Status.Info("Parsed %s: %d vertices, %d triangles", meshName(r), d.VertexCount, d.FaceCount)
	return d, true
}

func (s *Server) HandlerParse(w http.ResponseWriter, r *http.Request) {
	if d, ok := s.parseBody(w, r); ok {
		webutils.WriteJson(w, d)
	}
}

func (s *Server) HandlerNormalize(w http.ResponseWriter, r *http.Request) {
	d, ok := s.parseBody(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("unit") != "" {
		if err := d.NormalizeToUnitCube(); err != nil {
			webutils.WriteError(w, err)
			return
		}
	}

	var buf bytes.Buffer
	if err := off.Write(&buf, d); err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteFile(w, &buf, meshName(r)+".off")
}

func (s *Server) HandlerGLTF(w http.ResponseWriter, r *http.Request) {
	d, ok := s.parseBody(w, r)
	if !ok {
		return
	}

	doc, err := gltfutils.ExportDocument(d, meshName(r))
	if err != nil {
		webutils.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := gltfutils.ExportBinary(&buf, doc); err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteFile(w, &buf, meshName(r)+".glb")
}

type boundsResult struct {
	Min    mgl64.Vec3 `json:"min"`
	Max    mgl64.Vec3 `json:"max"`
	Center mgl64.Vec3 `json:"center"`
	Extent mgl64.Vec3 `json:"extent"`
}

func (s *Server) HandlerBounds(w http.ResponseWriter, r *http.Request) {
	d, ok := s.parseBody(w, r)
	if !ok {
		return
	}
	bb, err := d.Bounds()
	if err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteJson(w, &boundsResult{
		Min:    bb.Min(),
		Max:    bb.Max(),
		Center: bb.Center(),
		Extent: bb.Extent(),
	})
}

func (s *Server) HandlerStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	s.Status.Attach(conn)
}
