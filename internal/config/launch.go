package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"cube-ca/internal/cell"
	"cube-ca/internal/core"
	"cube-ca/internal/rules"
)

// Load builds the session configuration: defaults, then the launch file, then
// command line overrides. A missing default launch file is not an error; a
// missing file named with -l is.
func Load(args Args) (GameInfo, error) {
	path := args.LaunchPath()
	info, err := loadFile(path)
	switch {
	case err == nil:
		log.Info().Str("path", path).Msg("loaded launch file")
	case !args.Has(FlagLaunchFile) && errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("path", path).Msg("launch file not found, using built-in defaults")
		info = DefaultGameInfo()
	default:
		return GameInfo{}, fmt.Errorf("config: %s: %w", path, err)
	}

	info.Apply(args)
	if err := info.Resolve(); err != nil {
		return GameInfo{}, err
	}
	return info, nil
}

func loadFile(path string) (GameInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return GameInfo{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads launch file contents from r.
func Parse(r io.Reader) (GameInfo, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return GameInfo{}, fmt.Errorf("config: parse launch file: %w", err)
	}
	return FromMap(values)
}

// FromMap applies launch file keys over DefaultGameInfo. Unknown keys are
// ignored; malformed values are errors.
func FromMap(values map[string]string) (GameInfo, error) {
	info := DefaultGameInfo()
	p := mapParser{values: values}

	p.setString("OBJECT_FILE", &info.Object.File)
	p.setVec3("OBJECT_SCALE", &info.Object.Scale)
	p.setVec3("OBJECT_ROTATION", &info.Object.Rotation)
	p.setVec3("OBJECT_DIFFUSE", &info.Object.Diffuse)
	p.setVec3("OBJECT_SPECULAR", &info.Object.Specular)
	p.setFloat32("OBJECT_SHININESS", &info.Object.Shininess)
	for code := 0; code < cell.NumCodes; code++ {
		p.setString("TEXTURE_"+strings.ToUpper(cell.CodeName(code)), &info.Textures[code])
	}

	p.setVec3("AMBIENT_LEVEL", &info.Ambient)
	p.setFloat64("AUTOPLAY_INTERVAL", &info.AutoplayInterval)
	p.setInt("NUM_OBJECTS", &info.NumObjects)
	p.setFloat32("CELL_SPACING", &info.Spacing)
	p.setInt64("SEED", &info.Seed)
	p.setFloat64("PATTERN_DENSITY", &info.Density)
	p.setSize("WINDOW_SIZE", &info.Display.Window)
	p.setSize("MENU_SIZE", &info.Display.Menu)

	if v, ok := p.lookup("RULE"); ok {
		set, err := rules.Lookup(v)
		if err != nil {
			r, perr := rules.ParseRule(v)
			if perr != nil {
				p.fail("RULE", v, err)
			}
			set = rules.Set{Players: [2]rules.Rule{r, r}}
		}
		info.Rules = set
	}
	for _, pl := range []cell.Player{cell.P1, cell.P2} {
		key := strings.ToUpper(pl.String()) + "_RULE"
		if v, ok := p.lookup(key); ok {
			r, err := rules.ParseRule(v)
			if err != nil {
				p.fail(key, v, err)
				continue
			}
			info.Rules = info.Rules.With(pl, r)
		}
	}
	if v, ok := p.lookup("TIE_BREAK"); ok {
		tb, err := rules.ParseTieBreak(v)
		if err != nil {
			p.fail("TIE_BREAK", v, err)
		}
		info.Rules.TieBreak = tb
	}

	for _, side := range core.Sides() {
		b := &info.Sides[side]
		prefix := side.Key() + "_"
		p.setString(prefix+"NAME", &b.Name)
		b.hasStart = p.setVec3(prefix+"START", &b.Start)
		b.hasRow = p.setVec3(prefix+"ROW_STEP", &b.RowStep)
		b.hasCol = p.setVec3(prefix+"COL_STEP", &b.ColStep)
		if v, ok := p.lookup(prefix + "PATTERN"); ok {
			pat := Pattern(strings.ToLower(v))
			if !pat.Valid() {
				p.fail(prefix+"PATTERN", v, errors.New("want empty, p1, p2 or mixed"))
			}
			b.Pattern = pat
		}
	}

	if err := errors.Join(p.errs...); err != nil {
		return GameInfo{}, err
	}
	return info, nil
}

type mapParser struct {
	values map[string]string
	errs   []error
}

func (p *mapParser) lookup(key string) (string, bool) {
	v, ok := p.values[key]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (p *mapParser) fail(key, value string, err error) {
	p.errs = append(p.errs, fmt.Errorf("%s=%q: %w", key, value, err))
}

func (p *mapParser) setString(key string, dst *string) {
	if v, ok := p.lookup(key); ok {
		*dst = v
	}
}

func (p *mapParser) setInt(key string, dst *int) {
	if v, ok := p.lookup(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (p *mapParser) setInt64(key string, dst *int64) {
	if v, ok := p.lookup(key); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (p *mapParser) setFloat64(key string, dst *float64) {
	if v, ok := p.lookup(key); ok {
		f, err := parseFinite(v, 64)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (p *mapParser) setFloat32(key string, dst *float32) {
	if v, ok := p.lookup(key); ok {
		f, err := parseFinite(v, 32)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = float32(f)
	}
}

func (p *mapParser) setVec3(key string, dst *mgl32.Vec3) bool {
	v, ok := p.lookup(key)
	if !ok {
		return false
	}
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		p.fail(key, v, errors.New("want x,y,z"))
		return false
	}
	var out mgl32.Vec3
	for i, part := range parts {
		f, err := parseFinite(strings.TrimSpace(part), 32)
		if err != nil {
			p.fail(key, v, err)
			return false
		}
		out[i] = float32(f)
	}
	*dst = out
	return true
}

func (p *mapParser) setSize(key string, dst *core.Size) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		p.fail(key, v, errors.New("want w,h"))
		return
	}
	w, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err := errors.Join(err1, err2); err != nil {
		p.fail(key, v, err)
		return
	}
	*dst = core.Size{W: w, H: h}
}
