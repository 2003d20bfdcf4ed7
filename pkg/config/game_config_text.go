package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ParseGameConfig 解析文本格式的游戏配置
//
// 格式为空白分隔的记录序列，每条记录以类型名开头，字段必须连续出现，
// 记录之间顺序无关（可以跨行）：
//
//	Window  <W> <H> <frameLimit> <fullscreenFlag>
//	Font    <path> <size> <r> <g> <b>
//	Player  <SR> <CR> <S> <FR> <FG> <FB> <OR> <OG> <OB> <OT> <V>
//	Enemy   <SR> <CR> <SMIN> <SMAX> <OR> <OG> <OB> <OT> <VMIN> <VMAX> <L> <SI>
//	Bullet  <SR> <CR> <S> <FR> <FG> <FB> <OR> <OG> <OB> <OT> <V> <L>
//
// 本函数不读取字体文件，也不做范围校验；这两步由 LoadGameConfig 完成。
func ParseGameConfig(r io.Reader) (*GameConfig, error) {
	return parseGameConfig(r, nil)
}

// parseGameConfig 逐条解析记录；onFont 非 nil 时在 Font 记录读完后立即调用，
// 使第一条出错的记录决定返回的错误类型
func parseGameConfig(r io.Reader, onFont func(*FontConfig) error) (*GameConfig, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	cfg := &GameConfig{}
	for sc.Scan() {
		rr := &recordReader{sc: sc, record: sc.Text()}

		switch rr.record {
		case "Window":
			cfg.Window = WindowConfig{
				Width:      rr.integer("W"),
				Height:     rr.integer("H"),
				FrameLimit: rr.integer("frameLimit"),
				Fullscreen: rr.integer("fullscreen") != 0,
			}
		case "Font":
			cfg.Font = FontConfig{
				Path:  rr.token("path"),
				Size:  rr.number("size"),
				Color: rr.rgb("color"),
			}
		case "Player":
			cfg.Player = PlayerConfig{
				ShapeRadius:      rr.number("SR"),
				CollisionRadius:  rr.number("CR"),
				Speed:            rr.number("S"),
				Fill:             rr.rgb("fill"),
				Outline:          rr.rgb("outline"),
				OutlineThickness: rr.number("OT"),
				Sides:            rr.integer("V"),
			}
		case "Enemy":
			cfg.Enemy = EnemyConfig{
				ShapeRadius:      rr.number("SR"),
				CollisionRadius:  rr.number("CR"),
				SpeedMin:         rr.number("SMIN"),
				SpeedMax:         rr.number("SMAX"),
				Outline:          rr.rgb("outline"),
				OutlineThickness: rr.number("OT"),
				SidesMin:         rr.integer("VMIN"),
				SidesMax:         rr.integer("VMAX"),
				FragmentLifespan: rr.integer("L"),
				SpawnInterval:    rr.integer("SI"),
			}
		case "Bullet":
			cfg.Bullet = BulletConfig{
				ShapeRadius:      rr.number("SR"),
				CollisionRadius:  rr.number("CR"),
				Speed:            rr.number("S"),
				Fill:             rr.rgb("fill"),
				Outline:          rr.rgb("outline"),
				OutlineThickness: rr.number("OT"),
				Sides:            rr.integer("V"),
				Lifespan:         rr.integer("L"),
			}
		default:
			return nil, fmt.Errorf("%w: object type '%s'", ErrUnknownRecord, rr.record)
		}

		if rr.err != nil {
			return nil, rr.err
		}
		if rr.record == "Font" && onFont != nil {
			if err := onFont(&cfg.Font); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// recordReader 逐个读取一条记录的字段，只保留第一个错误
type recordReader struct {
	sc     *bufio.Scanner
	record string
	err    error
}

func (r *recordReader) token(field string) string {
	if r.err != nil {
		return ""
	}
	if !r.sc.Scan() {
		r.err = fmt.Errorf("%w: %s: missing field %s", ErrMalformedRecord, r.record, field)
		return ""
	}
	return r.sc.Text()
}

func (r *recordReader) integer(field string) int {
	tok := r.token(field)
	if r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		r.err = fmt.Errorf("%w: %s: field %s: %q is not an integer", ErrMalformedRecord, r.record, field, tok)
		return 0
	}
	return v
}

func (r *recordReader) number(field string) float64 {
	tok := r.token(field)
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		r.err = fmt.Errorf("%w: %s: field %s: %q is not a number", ErrMalformedRecord, r.record, field, tok)
		return 0
	}
	return v
}

func (r *recordReader) rgb(field string) RGB {
	return RGB{
		R: r.integer(field + ".r"),
		G: r.integer(field + ".g"),
		B: r.integer(field + ".b"),
	}
}
