package detection

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Kind identifies the modality of a detected item.
type Kind int

const (
	KindBox2D Kind = iota
	KindBox3D
	KindMask
	KindPoint
)

// Kinds lists every modality in display order.
var Kinds = []Kind{KindBox2D, KindBox3D, KindMask, KindPoint}

func (k Kind) String() string {
	switch k {
	case KindBox2D:
		return "2D box"
	case KindBox3D:
		return "3D box"
	case KindMask:
		return "mask"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Class is the semantic tag shared by every variant. Filtering only ever
// reads these two fields.
type Class struct {
	Label      string  `json:"label" yaml:"label"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Item is a single detection of any modality.
type Item interface {
	Classification() Class
	Kind() Kind
}

// Box2D is an axis-aligned box in normalized image coordinates.
type Box2D struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Class  `yaml:",inline"`
}

func (b Box2D) Classification() Class { return b.Class }
func (Box2D) Kind() Kind              { return KindBox2D }

// Vec3 is a 3D vector with lowercase x/y/z keys in both JSON and YAML.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// R3 converts v for use with gonum's spatial functions.
func (v Vec3) R3() r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

// Vec3Of converts a gonum vector.
func Vec3Of(v r3.Vec) Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// Box3D is an oriented box. RPY holds roll, pitch and yaw in degrees.
type Box3D struct {
	Center Vec3 `json:"center" yaml:"center"`
	Size   Vec3 `json:"size" yaml:"size"`
	RPY    Vec3 `json:"rpy" yaml:"rpy"`
	Class  `yaml:",inline"`
}

func (b Box3D) Classification() Class { return b.Class }
func (Box3D) Kind() Kind              { return KindBox3D }

// Volume returns the box volume; negative extents count as zero.
func (b Box3D) Volume() float64 {
	size := b.Size.R3()
	v := 1.0
	for _, e := range []float64{size.X, size.Y, size.Z} {
		if e <= 0 {
			return 0
		}
		v *= e
	}
	return v
}

// Mask is a segmentation mask inside a 2D box. ImageData is a PNG data URL as
// produced by the detection pipeline; it is carried, never decoded here.
type Mask struct {
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	Width     float64 `json:"width" yaml:"width"`
	Height    float64 `json:"height" yaml:"height"`
	ImageData string  `json:"imageData" yaml:"imageData"`
	Class     `yaml:",inline"`
}

func (m Mask) Classification() Class { return m.Class }
func (Mask) Kind() Kind              { return KindMask }

// Coord is a normalized 2D image position.
type Coord struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Point is a pointing result.
type Point struct {
	At    Coord `json:"point" yaml:"point"`
	Class `yaml:",inline"`
}

func (p Point) Classification() Class { return p.Class }
func (Point) Kind() Kind              { return KindPoint }

// Set groups the four detection collections handed over by the pipeline.
type Set struct {
	Boxes2D []Box2D `json:"boxes_2d" yaml:"boxes_2d"`
	Boxes3D []Box3D `json:"boxes_3d" yaml:"boxes_3d"`
	Masks   []Mask  `json:"masks" yaml:"masks"`
	Points  []Point `json:"points" yaml:"points"`
}

// Len returns the total number of items across all modalities.
func (s Set) Len() int {
	return len(s.Boxes2D) + len(s.Boxes3D) + len(s.Masks) + len(s.Points)
}
