package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/offmesh/config"
	"github.com/mogaika/offmesh/off"
	"github.com/mogaika/offmesh/utils"
	"github.com/mogaika/offmesh/utils/gltfutils"
)

type meshInfo struct {
	Name        string    `yaml:"name"`
	VertexCount int       `yaml:"vertices"`
	FaceCount   int       `yaml:"triangles"`
	EdgeCount   int       `yaml:"edges"`
	Min         []float64 `yaml:"min,flow"`
	Max         []float64 `yaml:"max,flow"`
}

func vec(v mgl64.Vec3) []float64 { return []float64{v[0], v[1], v[2]} }

func writeInfo(w io.Writer, name string, d *off.Document) error {
	bb, err := d.Bounds()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&meshInfo{
		Name:        name,
		VertexCount: d.VertexCount,
		FaceCount:   d.FaceCount,
		EdgeCount:   d.EdgeCount,
		Min:         vec(bb.Min()),
		Max:         vec(bb.Max()),
	}); err != nil {
		return errors.Wrapf(err, "Failed to marshal yaml")
	}
	return errors.Wrapf(enc.Close(), "Failed to close yaml encoder")
}

func exportGlb(path string, name string, d *off.Document) error {
	doc, err := gltfutils.ExportDocument(d, name)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to create %q", path)
	}
	defer f.Close()
	if err := gltfutils.ExportBinary(f, doc); err != nil {
		return err
	}
	return errors.Wrapf(f.Close(), "Failed to close %q", path)
}

func run(in, out, glb string, unit, dump, info bool) error {
	d, err := off.ParseFile(in)
	if err != nil {
		return errors.Wrapf(err, "Failed to parse %q", in)
	}
	log.Printf("[offconv] %s: %d vertices, %d triangles", in, d.VertexCount, d.FaceCount)

	if unit {
		if err := d.NormalizeToUnitCube(); err != nil {
			return err
		}
	}
	if dump {
		utils.Dump(d)
	}

	name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	if info {
		if err := writeInfo(os.Stdout, name, d); err != nil {
			return err
		}
	}
	if out != "" {
		if err := off.WriteFile(out, d); err != nil {
			return errors.Wrapf(err, "Failed to write %q", out)
		}
	}
	if glb != "" {
		if err := exportGlb(glb, name, d); err != nil {
			return errors.Wrapf(err, "Failed to export %q", glb)
		}
	}
	return nil
}

func main() {
	var in, out, glb, cfgPath, encoding string
	var unit, dump, info, listEncodings bool
	flag.StringVar(&in, "in", "", "Path to OFF file to read")
	flag.StringVar(&out, "out", "", "Path to write triangulated OFF file")
	flag.StringVar(&glb, "glb", "", "Path to write binary glTF file")
	flag.StringVar(&cfgPath, "config", config.DEFAULT_FILE_NAME, "Path to yaml config")
	flag.StringVar(&encoding, "encoding", "", "Source text encoding, overrides config")
	flag.BoolVar(&unit, "unit", false, "Scale vertices into [-1,1] cube")
	flag.BoolVar(&dump, "dump", false, "Dump parsed document")
	flag.BoolVar(&info, "info", false, "Print yaml summary")
	flag.BoolVar(&listEncodings, "encodings", false, "List supported encodings")
	flag.Parse()

	if listEncodings {
		for _, e := range config.ListEncodings() {
			fmt.Println(e)
		}
		return
	}
	if in == "" {
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if encoding != "" {
		cfg.Encoding = encoding
	}
	if err := config.Apply(cfg); err != nil {
		log.Fatal(err)
	}

	if err := run(in, out, glb, unit, dump, info); err != nil {
		if kind := off.KindOf(err); kind != 0 {
			log.Fatalf("[offconv] %v error: %v", kind, err)
		}
		log.Fatal(err)
	}
}
