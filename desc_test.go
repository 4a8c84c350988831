package motornet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testExpCfg() *ExpCfg {
	cfg := CreateExpCfg("transport-test")
	cfg.AddMotor(MotorDesc{
		Name:   "m0",
		StartX: 1.0, StartY: 2.0, StartZ: 3.0,
		DestLLX: 50.0, DestLLY: 50.0, DestLLZ: 50.0,
		DestURX: 60.0, DestURY: 60.0, DestURZ: 60.0,
		Release: 0.5,
	})
	cfg.AddSurface(SurfaceDesc{Name: "cell-wall", Kind: "reflect", Radius: 100.0})
	cfg.AddSurface(SurfaceDesc{Name: "meter", Kind: "flux", X: 10.0, Radius: 20.0})
	return cfg
}

func TestExpCfgValidate(t *testing.T) {
	assert.NoError(t, testExpCfg().Validate())

	bad := testExpCfg()
	bad.MaxCycles = 0
	bad.Motors[0].Release = -1.0
	bad.Motors[0].DestURX = bad.Motors[0].DestLLX - 1.0
	bad.Surfaces[1].Radius = 0.0
	err := bad.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max cycles")
	assert.Contains(t, err.Error(), "release time")
	assert.Contains(t, err.Error(), "inverted")
	assert.Contains(t, err.Error(), "radius")
}

func TestExpCfgDuplicateNames(t *testing.T) {
	cfg := testExpCfg()
	assert.Error(t, cfg.AddMotor(MotorDesc{Name: "m0"}))
	assert.Error(t, cfg.AddSurface(SurfaceDesc{Name: "meter", Kind: "flux", Radius: 1.0}))
	assert.Error(t, cfg.AddSurface(SurfaceDesc{Name: "odd", Kind: "absorb", Radius: 1.0}))
}

func TestExpCfgRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := testExpCfg()

	for _, name := range []string{"cfg.yaml", "cfg.json"} {
		filename := filepath.Join(dir, name)
		assert.NoError(t, cfg.WriteToFile(filename))

		recovered, err := ReadExpCfg(filename, filepath.Ext(name) == ".yaml", []byte{})
		assert.NoError(t, err)
		assert.Equal(t, cfg.Name, recovered.Name)
		assert.Equal(t, cfg.Network, recovered.Network)
		assert.Equal(t, cfg.Motion, recovered.Motion)
		assert.Equal(t, cfg.Motors, recovered.Motors)
		assert.Equal(t, cfg.Surfaces, recovered.Surfaces)
		assert.Equal(t, cfg.MaxCycles, recovered.MaxCycles)
	}
}

func TestExpCfgMissingFile(t *testing.T) {
	_, err := ReadExpCfg(filepath.Join(t.TempDir(), "no-such.yaml"), true, []byte{})
	assert.Error(t, err)
}

func TestExpCfgBadPaths(t *testing.T) {
	dir := t.TempDir()

	// a directory is not a readable cfg file
	_, err := ReadExpCfg(dir, true, []byte{})
	assert.Error(t, err)

	// a path that descends through a regular file fails the stat with
	// an error other than non-existence
	plain := filepath.Join(dir, "plain")
	assert.NoError(t, os.WriteFile(plain, []byte("not a directory"), 0644))
	assert.NotPanics(t, func() {
		_, err = ReadExpCfg(filepath.Join(plain, "cfg.yaml"), true, []byte{})
		assert.Error(t, err)
	})
}

func TestExpCfgDict(t *testing.T) {
	dir := t.TempDir()

	ecd := CreateExpCfgDict("experiments")
	cfg := testExpCfg()
	assert.NoError(t, ecd.AddExpCfg(cfg, false))
	assert.Error(t, ecd.AddExpCfg(cfg, false))
	assert.NoError(t, ecd.AddExpCfg(cfg, true))

	_, present := ecd.RecoverExpCfg("transport-test")
	assert.True(t, present)
	_, present = ecd.RecoverExpCfg("missing")
	assert.False(t, present)

	filename := filepath.Join(dir, "dict.yaml")
	assert.NoError(t, ecd.WriteToFile(filename))

	recovered, err := ReadExpCfgDict(filename, true, []byte{})
	assert.NoError(t, err)
	assert.Equal(t, ecd.DictName, recovered.DictName)
	assert.Len(t, recovered.Cfgs, 1)
}

func TestReportErrs(t *testing.T) {
	assert.NoError(t, ReportErrs(nil))
	assert.NoError(t, ReportErrs([]error{nil, nil}))

	err := ReportErrs([]error{errors.New("first"), nil, errors.New("second")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
}

func TestCheckDirectories(t *testing.T) {
	dir := t.TempDir()

	ok, err := CheckDirectories([]string{dir, ""})
	assert.True(t, ok)
	assert.NoError(t, err)

	ok, err = CheckDirectories([]string{filepath.Join(dir, "absent")})
	assert.False(t, ok)
	assert.Error(t, err)
}
