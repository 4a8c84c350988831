package motornet

// desc.go holds the serializable descriptions of an experiment: the tube
// network parameters, the motion model parameters, the motors to release
// and the volume surfaces they interact with.  Front-end tools build these
// structs and write them to file; a run of the simulator reads them back
// and assembles the corresponding runtime objects.

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// SurfaceDesc describes a spherical volume surface.  Kind is the string
// form of a SurfaceKind
type SurfaceDesc struct {
	Name   string  `json:"name" yaml:"name"`
	Kind   string  `json:"kind" yaml:"kind"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Z      float64 `json:"z" yaml:"z"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// MotorDesc describes one motor: where it is released and the box it is
// trying to reach
type MotorDesc struct {
	Name    string  `json:"name" yaml:"name"`
	StartX  float64 `json:"startx" yaml:"startx"`
	StartY  float64 `json:"starty" yaml:"starty"`
	StartZ  float64 `json:"startz" yaml:"startz"`
	DestLLX float64 `json:"destllx" yaml:"destllx"`
	DestLLY float64 `json:"destlly" yaml:"destlly"`
	DestLLZ float64 `json:"destllz" yaml:"destllz"`
	DestURX float64 `json:"desturx" yaml:"desturx"`
	DestURY float64 `json:"destury" yaml:"destury"`
	DestURZ float64 `json:"desturz" yaml:"desturz"`

	// release time in seconds of simulation time
	Release float64 `json:"release" yaml:"release"`
}

// ExpCfg holds a complete experiment description
type ExpCfg struct {
	Name     string            `json:"name" yaml:"name"`
	Network  TubeNetworkConfig `json:"network" yaml:"network"`
	Motion   MotionConfig      `json:"motion" yaml:"motion"`
	Motors   []MotorDesc       `json:"motors" yaml:"motors"`
	Surfaces []SurfaceDesc     `json:"surfaces" yaml:"surfaces"`

	// maximum number of float/walk cycles per motor before the
	// transport attempt is abandoned
	MaxCycles int `json:"maxcycles" yaml:"maxcycles"`
}

// ExpCfgDict holds a map of experiment configurations, indexed by their names
type ExpCfgDict struct {
	DictName string            `json:"dictname" yaml:"dictname"`
	Cfgs     map[string]ExpCfg `json:"cfgs" yaml:"cfgs"`
}

// CreateExpCfgDict is a constructor.  Saves the dictionary name and
// initializes the configuration map
func CreateExpCfgDict(name string) *ExpCfgDict {
	ecd := new(ExpCfgDict)
	ecd.DictName = name
	ecd.Cfgs = make(map[string]ExpCfg)

	return ecd
}

// AddExpCfg adds the offered ExpCfg to the dictionary, optionally returning
// an error if an ExpCfg with the same Name is already saved.
func (ecd *ExpCfgDict) AddExpCfg(ec *ExpCfg, overwrite bool) error {
	// allow for overwriting duplication?
	if !overwrite {
		_, present := ecd.Cfgs[ec.Name]
		if present {
			return fmt.Errorf("attempt to overwrite template ExpCfg %s", ec.Name)
		}
	}
	// save it
	ecd.Cfgs[ec.Name] = *ec

	return nil
}

// RecoverExpCfg returns an ExpCfg from the dictionary, with name equal to the
// input parameter.  It returns also a flag denoting whether the identified
// ExpCfg has an entry in the dictionary.
func (ecd *ExpCfgDict) RecoverExpCfg(name string) (*ExpCfg, bool) {
	ec, present := ecd.Cfgs[name]
	if present {
		return &ec, true
	}

	return nil, false
}

// WriteToFile serializes the dictionary and writes it to the file whose name
// is given.  Output file extension selects whether serialization is to json
// or to yaml
func (ecd *ExpCfgDict) WriteToFile(filename string) error {
	pathExt := path.Ext(filename)
	var bytes []byte
	var merr error = nil

	if pathExt == ".yaml" || pathExt == ".YAML" || pathExt == ".yml" {
		bytes, merr = yaml.Marshal(*ecd)
	} else if pathExt == ".json" || pathExt == ".JSON" {
		bytes, merr = json.MarshalIndent(*ecd, "", "\t")
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

	return werr
}

// ReadExpCfgDict deserializes a byte slice holding a representation of an
// ExpCfgDict struct.  If the input argument of dict (those bytes) is empty,
// the file whose name is given is read to acquire them.
func ReadExpCfgDict(filename string, useYAML bool, dict []byte) (*ExpCfgDict, error) {
	var err error
	if len(dict) == 0 {
		dict, err = os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
	}

	example := ExpCfgDict{}
	if useYAML {
		err = yaml.Unmarshal(dict, &example)
	} else {
		err = json.Unmarshal(dict, &example)
	}

	if err != nil {
		return nil, err
	}

	return &example, nil
}

// CreateExpCfg is a constructor.  Saves the offered name and fills in the
// parameter defaults; the caller adjusts what differs from them.
func CreateExpCfg(name string) *ExpCfg {
	expcfg := &ExpCfg{Name: name, Network: DefaultTubeNetworkConfig(),
		Motion: DefaultMotionConfig(), MaxCycles: 100}
	expcfg.Motors = make([]MotorDesc, 0)
	expcfg.Surfaces = make([]SurfaceDesc, 0)

	return expcfg
}

// AddMotor appends a motor description, checking that its name is not
// already in use
func (dict *ExpCfg) AddMotor(md MotorDesc) error {
	for _, prev := range dict.Motors {
		if prev.Name == md.Name {
			return fmt.Errorf("duplicated motor name %s", md.Name)
		}
	}
	dict.Motors = append(dict.Motors, md)

	return nil
}

// AddSurface appends a surface description, checking that its name is not
// already in use and that its kind is recognized
func (dict *ExpCfg) AddSurface(sd SurfaceDesc) error {
	_, present := surfaceKindFromStr[sd.Kind]
	if !present {
		return fmt.Errorf("unrecognized surface kind %s", sd.Kind)
	}
	for _, prev := range dict.Surfaces {
		if prev.Name == sd.Name {
			return fmt.Errorf("duplicated surface name %s", sd.Name)
		}
	}
	dict.Surfaces = append(dict.Surfaces, sd)

	return nil
}

// Validate checks the configuration pieces for coherence, aggregating
// whatever errors are discovered
func (dict *ExpCfg) Validate() error {
	errs := make([]error, 0)

	errs = append(errs, dict.Network.Validate())
	errs = append(errs, dict.Motion.Validate())

	if dict.MaxCycles < 1 {
		errs = append(errs, fmt.Errorf("experiment %s max cycles %d is not positive",
			dict.Name, dict.MaxCycles))
	}

	for _, md := range dict.Motors {
		if md.Release < 0.0 {
			errs = append(errs, fmt.Errorf("motor %s release time %f is negative",
				md.Name, md.Release))
		}
		if md.DestURX < md.DestLLX || md.DestURY < md.DestLLY || md.DestURZ < md.DestLLZ {
			errs = append(errs, fmt.Errorf("motor %s destination box is inverted", md.Name))
		}
	}

	for _, sd := range dict.Surfaces {
		_, present := surfaceKindFromStr[sd.Kind]
		if !present {
			errs = append(errs, fmt.Errorf("surface %s kind %s is not recognized",
				sd.Name, sd.Kind))
		}
		if sd.Radius <= 0.0 {
			errs = append(errs, fmt.Errorf("surface %s radius %f is not positive",
				sd.Name, sd.Radius))
		}
	}

	return ReportErrs(errs)
}

// WriteToFile serializes the ExpCfg and writes it to the file whose name is
// given.  Output file extension selects whether serialization is to json or
// to yaml
func (dict *ExpCfg) WriteToFile(filename string) error {
	pathExt := path.Ext(filename)
	var bytes []byte
	var merr error = nil

	if pathExt == ".yaml" || pathExt == ".YAML" || pathExt == ".yml" {
		bytes, merr = yaml.Marshal(*dict)
	} else if pathExt == ".json" || pathExt == ".JSON" {
		bytes, merr = json.MarshalIndent(*dict, "", "\t")
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

	return werr
}

// ReadExpCfg deserializes a byte slice holding a representation of an ExpCfg
// struct.  If the input argument of dict (those bytes) is empty, the file
// whose name is given is read to acquire them.  A deserialized representation
// is returned, or an error if one is generated from a file read or the
// deserialization.
func ReadExpCfg(filename string, useYAML bool, dict []byte) (*ExpCfg, error) {
	var err error

	// read from the file only if the byte slice is empty
	// validate input file name
	if len(dict) == 0 {
		fileInfo, err := os.Stat(filename)
		if err != nil || fileInfo.IsDir() {
			msg := fmt.Sprintf("experiment cfg %s does not exist or cannot be read", filename)
			fmt.Println(msg)

			return nil, errors.New(msg)
		}
		dict, err = os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
	}

	example := ExpCfg{}

	// extension of input file name indicates whether we are deserializing json or yaml
	if useYAML {
		err = yaml.Unmarshal(dict, &example)
	} else {
		err = json.Unmarshal(dict, &example)
	}

	if err != nil {
		return nil, err
	}

	return &example, nil
}

// ReportErrs transforms a list of errors and transforms the non-nil ones
// into a single error with comma-separated report of all the constituent
// errors, and returns it.
func ReportErrs(errs []error) error {
	err_msg := make([]string, 0)
	for _, err := range errs {
		if err != nil {
			err_msg = append(err_msg, err.Error())
		}
	}
	if len(err_msg) == 0 {
		return nil
	}

	return errors.New(strings.Join(err_msg, ","))
}

// CheckDirectories probes the file system for the existence
// of every directory listed in the list of files.  Returns a boolean
// indicating whether all dirs are valid, and returns an aggregated error
// if any checks failed.
func CheckDirectories(dirs []string) (bool, error) {
	// make sure that every directory name included exists
	failures := []string{}

	// for every offered (non-empty) directory
	for _, dir := range dirs {
		if len(dir) == 0 {
			continue
		}

		// look for a description of the named directory
		dirInfo, err := os.Stat(dir)

		// if the call the filesystem failed, put the problem directory on the failures list
		if os.IsNotExist(err) {
			failures = append(failures, fmt.Sprintf("%s does not exist", dir))

			continue
		}

		// if the named directory exists, but is not a directory, put the problem directory on the failures list
		if !dirInfo.IsDir() {
			failures = append(failures, fmt.Sprintf("%s is not a directory", dir))
		}
	}

	// if there are any failures, aggregate error messages and return with error
	if len(failures) > 0 {
		err := errors.New(strings.Join(failures, ","))

		return false, err
	}

	// no errors, return directly
	return true, nil
}
