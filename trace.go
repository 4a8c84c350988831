package motornet

import (
	"encoding/json"
	"os"
	"path"
	"strconv"

	"github.com/iti/evt/vrtime"
	"gopkg.in/yaml.v3"
)

type TraceRecordType int

const (
	MotorType TraceRecordType = iota
	NetworkStructType
)

var trtToStr map[TraceRecordType]string = map[TraceRecordType]string{
	MotorType: "motor", NetworkStructType: "network"}

type TraceInst struct {
	TraceTime string
	TraceType string
	TraceStr  string
}

// NameType is a an entry in a dictionary created for a trace
// that maps object id numbers to a (name,type) pair
type NameType struct {
	Name string
	Type string
}

// TraceManager gathers information about a simulation model and an
// execution of that model
type TraceManager struct {
	// experiment uses trace
	InUse bool `json:"inuse" yaml:"inuse"`

	// name of experiment
	ExpName string `json:"expname" yaml:"expname"`

	// text name associated with each objID
	NameByID map[int]NameType `json:"namebyid" yaml:"namebyid"`

	// all trace records for this experiment
	Traces map[int][]TraceInst `json:"traces" yaml:"traces"`
}

// CreateTraceManager is a constructor.  It saves the name of the experiment
// and a flag indicating whether the trace manager is active.  By testing this
// flag we can inhibit the activity of gathering a trace when we don't want it,
// while embedding calls to its methods everywhere we need them when it is
func CreateTraceManager(ExpName string, active bool) *TraceManager {
	tm := new(TraceManager)
	tm.InUse = active
	tm.ExpName = ExpName
	tm.NameByID = make(map[int]NameType)  // dictionary of id code -> (name,type)
	tm.Traces = make(map[int][]TraceInst) // traces are saved by the id of the motor that originated them
	return tm
}

// Active tells the caller whether the Trace Manager is actively being used
func (tm *TraceManager) Active() bool {
	return tm.InUse
}

// AddTrace creates a record of the trace using its calling arguments, and stores it
func (tm *TraceManager) AddTrace(vrt vrtime.Time, motorID int, trace TraceInst) {

	// return if we aren't using the trace manager
	if !tm.InUse {
		return
	}

	_, present := tm.Traces[motorID]
	if !present {
		tm.Traces[motorID] = make([]TraceInst, 0)
	}
	tm.Traces[motorID] = append(tm.Traces[motorID], trace)
}

// AddName is used to add an element to the id -> (name,type) dictionary for the trace file
func (tm *TraceManager) AddName(id int, name string, objDesc string) {
	if tm.InUse {
		_, present := tm.NameByID[id]
		if present {
			panic("duplicated id in AddName")
		}
		tm.NameByID[id] = NameType{Name: name, Type: objDesc}
	}
}

// WriteToFile stores the Traces struct to the file whose name is given.
// Serialization to json or to yaml is selected based on the extension of this name.
func (tm *TraceManager) WriteToFile(filename string) bool {
	if !tm.InUse {
		return false
	}
	pathExt := path.Ext(filename)
	var bytes []byte
	var merr error = nil

	if pathExt == ".yaml" || pathExt == ".YAML" || pathExt == ".yml" {
		bytes, merr = yaml.Marshal(*tm)
	} else if pathExt == ".json" || pathExt == ".JSON" {
		bytes, merr = json.MarshalIndent(*tm, "", "\t")
	}

	if merr != nil {
		panic(merr)
	}

	f, cerr := os.Create(filename)
	if cerr != nil {
		panic(cerr)
	}
	_, werr := f.WriteString(string(bytes[:]))
	if werr != nil {
		panic(werr)
	}
	f.Close()
	return true
}

// MotorTrace saves information about a transition in a motor's transport
// cycle.  Saved for post-run analysis
type MotorTrace struct {
	Time    float64 // time in float64
	Ticks   int64   // ticks variable of time
	MotorID int     // integer id of the motor being referenced
	Segment int     // index of the tube segment involved, -1 when floating
	Op      string  // "release", "bind", "unbind", "arrive", "timeout"
	X       float64 // motor position when the record was cut
	Y       float64
	Z       float64
}

func (mtr *MotorTrace) TraceType() TraceRecordType {
	return MotorType
}

func (mtr *MotorTrace) Serialize() string {
	var bytes []byte
	var merr error

	bytes, merr = yaml.Marshal(*mtr)

	if merr != nil {
		panic(merr)
	}
	return string(bytes[:])
}

// AddMotorTrace creates a record of the trace using its calling arguments, and stores it
func AddMotorTrace(tm *TraceManager, vrt vrtime.Time, motorID, segment int, op string, loc Point3) {
	mtr := new(MotorTrace)
	mtr.Time = vrt.Seconds()
	mtr.Ticks = vrt.Ticks()
	mtr.MotorID = motorID
	mtr.Segment = segment
	mtr.Op = op
	mtr.X = loc.X
	mtr.Y = loc.Y
	mtr.Z = loc.Z

	mtrStr := mtr.Serialize()
	traceTime := strconv.FormatFloat(vrt.Seconds(), 'f', -1, 64)

	trcInst := TraceInst{TraceTime: traceTime, TraceType: trtToStr[MotorType], TraceStr: mtrStr}
	tm.AddTrace(vrt, mtr.MotorID, trcInst)
}
