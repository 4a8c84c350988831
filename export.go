package motornet

// export.go decouples the geometry and motion engines from any particular
// plotting tool.  The engines hand point lists, field samples and scalar
// series to a PlotSink; what becomes of them (Mathematica, MATLAB, a test
// buffer) is the sink's business.  The file-backed sink here serializes
// each emission to YAML or JSON, chosen by the extension pattern, in its
// own numbered file.

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// An XY is one sample of a scalar-versus-scalar series
type XY struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// A PlotSink receives the data products of a simulation run
type PlotSink interface {
	// EmitPoints hands over an unordered point cloud, e.g. overlap points
	EmitPoints(points []Point3) error

	// EmitConnectedPath hands over an ordered trajectory, e.g. a motor's
	// position history
	EmitConnectedPath(points []Point3) error

	// EmitVectorField hands over field samples
	EmitVectorField(field *VectorField) error

	// EmitXYSeries hands over a labeled scalar series
	EmitXYSeries(series []XY, xlabel, ylabel string) error
}

// NullSink discards everything, for runs that only want the numbers
type NullSink struct{}

func (ns *NullSink) EmitPoints(points []Point3) error          { return nil }
func (ns *NullSink) EmitConnectedPath(points []Point3) error   { return nil }
func (ns *NullSink) EmitVectorField(field *VectorField) error  { return nil }
func (ns *NullSink) EmitXYSeries(series []XY, x, y string) error { return nil }

// pointDesc is the serializable form of a Point3
type pointDesc struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// sampleDesc is the serializable form of a FieldSample
type sampleDesc struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	U float64 `json:"u" yaml:"u"`
	V float64 `json:"v" yaml:"v"`
	W float64 `json:"w" yaml:"w"`
}

// pointsDesc wraps a point list with the flag distinguishing clouds from
// connected paths
type pointsDesc struct {
	Connected bool        `json:"connected" yaml:"connected"`
	Points    []pointDesc `json:"points" yaml:"points"`
}

// fieldDesc wraps a field sample list
type fieldDesc struct {
	Samples []sampleDesc `json:"samples" yaml:"samples"`
}

// seriesDesc wraps a labeled scalar series
type seriesDesc struct {
	XLabel string `json:"xlabel" yaml:"xlabel"`
	YLabel string `json:"ylabel" yaml:"ylabel"`
	Values []XY   `json:"values" yaml:"values"`
}

// A FileSink writes each emission to dir/prefix_N.ext.  Serialization to
// json or to yaml is selected based on the extension
type FileSink struct {
	dir    string
	prefix string
	ext    string
	nxtIdx int
}

// CreateFileSink is a constructor.  ext selects the codec and must be
// ".yaml", ".yml" or ".json"
func CreateFileSink(dir, prefix, ext string) (*FileSink, error) {
	if ext != ".yaml" && ext != ".yml" && ext != ".json" {
		return nil, fmt.Errorf("unrecognized sink extension %s", ext)
	}
	fs := new(FileSink)
	fs.dir = dir
	fs.prefix = prefix
	fs.ext = ext
	return fs, nil
}

// write serializes v into the sink's next numbered file
func (fs *FileSink) write(v any) error {
	fs.nxtIdx += 1
	filename := filepath.Join(fs.dir, fmt.Sprintf("%s_%d%s", fs.prefix, fs.nxtIdx, fs.ext))

	var bytes []byte
	var merr error
	if path.Ext(filename) == ".json" {
		bytes, merr = json.MarshalIndent(v, "", "\t")
	} else {
		bytes, merr = yaml.Marshal(v)
	}
	if merr != nil {
		return merr
	}
	return os.WriteFile(filename, bytes, 0644)
}

func descPoints(points []Point3) []pointDesc {
	pd := make([]pointDesc, len(points))
	for i, pt := range points {
		pd[i] = pointDesc{X: pt.X, Y: pt.Y, Z: pt.Z}
	}
	return pd
}

func (fs *FileSink) EmitPoints(points []Point3) error {
	return fs.write(pointsDesc{Connected: false, Points: descPoints(points)})
}

func (fs *FileSink) EmitConnectedPath(points []Point3) error {
	return fs.write(pointsDesc{Connected: true, Points: descPoints(points)})
}

func (fs *FileSink) EmitVectorField(field *VectorField) error {
	samples := make([]sampleDesc, len(field.Samples))
	for i, sample := range field.Samples {
		samples[i] = sampleDesc{
			X: sample.Origin.X, Y: sample.Origin.Y, Z: sample.Origin.Z,
			U: sample.Dir.X, V: sample.Dir.Y, W: sample.Dir.Z,
		}
	}
	return fs.write(fieldDesc{Samples: samples})
}

func (fs *FileSink) EmitXYSeries(series []XY, xlabel, ylabel string) error {
	return fs.write(seriesDesc{XLabel: xlabel, YLabel: ylabel, Values: series})
}
