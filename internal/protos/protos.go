// Package protos holds the subset of the ONNX protobuf messages needed to convert a model,
// along with a decoder and encoder for their wire format.
//
// Names follow the ones generated by protoc-gen-go for onnx.proto (ModelProto, TensorProto_DataType, ...),
// so code reading these types looks the same as code using the generated package. Fields not listed
// here (sparse initializers, training info, functions, quantization annotations) are skipped on decoding.
package protos

import "strconv"

// TensorProto_DataType enumerates the ONNX tensor element types.
type TensorProto_DataType int32

const (
	TensorProto_UNDEFINED  TensorProto_DataType = 0
	TensorProto_FLOAT      TensorProto_DataType = 1
	TensorProto_UINT8      TensorProto_DataType = 2
	TensorProto_INT8       TensorProto_DataType = 3
	TensorProto_UINT16     TensorProto_DataType = 4
	TensorProto_INT16      TensorProto_DataType = 5
	TensorProto_INT32      TensorProto_DataType = 6
	TensorProto_INT64      TensorProto_DataType = 7
	TensorProto_STRING     TensorProto_DataType = 8
	TensorProto_BOOL       TensorProto_DataType = 9
	TensorProto_FLOAT16    TensorProto_DataType = 10
	TensorProto_DOUBLE     TensorProto_DataType = 11
	TensorProto_UINT32     TensorProto_DataType = 12
	TensorProto_UINT64     TensorProto_DataType = 13
	TensorProto_COMPLEX64  TensorProto_DataType = 14
	TensorProto_COMPLEX128 TensorProto_DataType = 15
	TensorProto_BFLOAT16   TensorProto_DataType = 16
)

var TensorProto_DataType_name = map[int32]string{
	0:  "UNDEFINED",
	1:  "FLOAT",
	2:  "UINT8",
	3:  "INT8",
	4:  "UINT16",
	5:  "INT16",
	6:  "INT32",
	7:  "INT64",
	8:  "STRING",
	9:  "BOOL",
	10: "FLOAT16",
	11: "DOUBLE",
	12: "UINT32",
	13: "UINT64",
	14: "COMPLEX64",
	15: "COMPLEX128",
	16: "BFLOAT16",
}

func (x TensorProto_DataType) String() string {
	if s, ok := TensorProto_DataType_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

// TensorProto_DataLocation tells whether the tensor data is stored inline or in an external file.
type TensorProto_DataLocation int32

const (
	TensorProto_DEFAULT  TensorProto_DataLocation = 0
	TensorProto_EXTERNAL TensorProto_DataLocation = 1
)

func (x TensorProto_DataLocation) String() string {
	switch x {
	case TensorProto_DEFAULT:
		return "DEFAULT"
	case TensorProto_EXTERNAL:
		return "EXTERNAL"
	}
	return strconv.Itoa(int(x))
}

// AttributeProto_AttributeType enumerates the value kinds an attribute can hold.
type AttributeProto_AttributeType int32

const (
	AttributeProto_UNDEFINED AttributeProto_AttributeType = 0
	AttributeProto_FLOAT     AttributeProto_AttributeType = 1
	AttributeProto_INT       AttributeProto_AttributeType = 2
	AttributeProto_STRING    AttributeProto_AttributeType = 3
	AttributeProto_TENSOR    AttributeProto_AttributeType = 4
	AttributeProto_GRAPH     AttributeProto_AttributeType = 5
	AttributeProto_FLOATS    AttributeProto_AttributeType = 6
	AttributeProto_INTS      AttributeProto_AttributeType = 7
	AttributeProto_STRINGS   AttributeProto_AttributeType = 8
	AttributeProto_TENSORS   AttributeProto_AttributeType = 9
	AttributeProto_GRAPHS    AttributeProto_AttributeType = 10
)

var AttributeProto_AttributeType_name = map[int32]string{
	0:  "UNDEFINED",
	1:  "FLOAT",
	2:  "INT",
	3:  "STRING",
	4:  "TENSOR",
	5:  "GRAPH",
	6:  "FLOATS",
	7:  "INTS",
	8:  "STRINGS",
	9:  "TENSORS",
	10: "GRAPHS",
}

func (x AttributeProto_AttributeType) String() string {
	if s, ok := AttributeProto_AttributeType_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

// ModelProto is the top-level ONNX container.
type ModelProto struct {
	IrVersion       int64
	OpsetImport     []*OperatorSetIdProto
	ProducerName    string
	ProducerVersion string
	Domain          string
	ModelVersion    int64
	DocString       string
	Graph           *GraphProto
	MetadataProps   []*StringStringEntryProto
}

// GetGraph returns the model graph, or nil.
func (x *ModelProto) GetGraph() *GraphProto {
	if x == nil {
		return nil
	}
	return x.Graph
}

// OperatorSetIdProto identifies an operator set by domain and version.
type OperatorSetIdProto struct {
	Domain  string
	Version int64
}

// StringStringEntryProto is a generic key/value pair.
type StringStringEntryProto struct {
	Key   string
	Value string
}

// GraphProto is a list of nodes forming a computation graph, plus its initializers and interface.
type GraphProto struct {
	Node        []*NodeProto
	Name        string
	Initializer []*TensorProto
	DocString   string
	Input       []*ValueInfoProto
	Output      []*ValueInfoProto
	ValueInfo   []*ValueInfoProto
}

// NodeProto is one operator invocation.
type NodeProto struct {
	Input     []string
	Output    []string
	Name      string
	OpType    string
	Domain    string
	Attribute []*AttributeProto
	DocString string
}

func (x *NodeProto) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *NodeProto) GetOpType() string {
	if x == nil {
		return ""
	}
	return x.OpType
}

// AttributeProto is a named, typed attribute of a NodeProto.
type AttributeProto struct {
	Name      string
	DocString string
	Type      AttributeProto_AttributeType
	F         float32
	I         int64
	S         []byte
	T         *TensorProto
	G         *GraphProto
	Floats    []float32
	Ints      []int64
	Strings   [][]byte
	Tensors   []*TensorProto
	Graphs    []*GraphProto
}

// TensorProto holds a tensor: shape, element type and data in one of several encodings.
type TensorProto struct {
	Dims         []int64
	DataType     int32
	FloatData    []float32
	Int32Data    []int32
	StringData   [][]byte
	Int64Data    []int64
	Name         string
	DocString    string
	RawData      []byte
	ExternalData []*StringStringEntryProto
	DataLocation TensorProto_DataLocation
	DoubleData   []float64
	Uint64Data   []uint64
}

// ValueInfoProto describes a named value (graph input, output or intermediate).
type ValueInfoProto struct {
	Name      string
	Type      *TypeProto
	DocString string
}

// GetType returns the type of the value, or nil.
func (x *ValueInfoProto) GetType() *TypeProto {
	if x == nil {
		return nil
	}
	return x.Type
}

// TypeProto describes the type of a value. Only tensor types are represented.
type TypeProto struct {
	TensorType *TypeProto_Tensor
	Denotation string
}

// GetTensorType returns the tensor type, or nil.
func (x *TypeProto) GetTensorType() *TypeProto_Tensor {
	if x == nil {
		return nil
	}
	return x.TensorType
}

// TypeProto_Tensor is the type of a tensor value: element type and (optional) shape.
type TypeProto_Tensor struct {
	ElemType int32
	Shape    *TensorShapeProto
}

// GetShape returns the tensor shape, or nil if it was not given.
func (x *TypeProto_Tensor) GetShape() *TensorShapeProto {
	if x == nil {
		return nil
	}
	return x.Shape
}

// TensorShapeProto is a list of dimensions.
type TensorShapeProto struct {
	Dim []*TensorShapeProto_Dimension
}

// GetDim returns the dimensions, or nil.
func (x *TensorShapeProto) GetDim() []*TensorShapeProto_Dimension {
	if x == nil {
		return nil
	}
	return x.Dim
}

// TensorShapeProto_Dimension is either a fixed value or a symbolic parameter.
type TensorShapeProto_Dimension struct {
	DimValue   int64
	DimParam   string
	Denotation string
}
