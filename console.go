package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/seqsense/pcgol/mat"
)

type console struct {
	cmd *commandContext
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")

var consoleCommands = map[string]func(cmd *commandContext, args []string) ([]string, error){
	"joint": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 4 {
			return nil, errArgumentNumber
		}
		p, err := parseVec3(args[1:])
		if err != nil {
			return nil, err
		}
		if err := cmd.SetJoint(args[0], p); err != nil {
			return nil, err
		}
		return []string{args[0] + " " + formatVec3(p)}, nil
	},
	"joints": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		var res []string
		for _, j := range cmd.Joints() {
			res = append(res, j.name+" "+formatVec3(j.pos))
		}
		return res, nil
	},
	"locators": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		var res []string
		for _, l := range cmd.Locators() {
			res = append(res, l.name+" "+formatVec3(l.pos))
		}
		return res, nil
	},
	"selection": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		sel := cmd.Selection()
		if len(sel) == 0 {
			return nil, nil
		}
		return []string{strings.Join(sel, " ")}, nil
	},
	"select": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) == 0 {
			return nil, errArgumentNumber
		}
		if err := cmd.Select(args...); err != nil {
			return nil, err
		}
		return []string{strings.Join(args, " ")}, nil
	},
	"clear": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		cmd.ClearSelection()
		return nil, nil
	},
	"multiplier": func(cmd *commandContext, args []string) ([]string, error) {
		switch len(args) {
		case 0:
		case 1:
			m, err := parseFinite(args[0])
			if err != nil {
				return nil, err
			}
			if err := cmd.SetMultiplier(m); err != nil {
				return nil, err
			}
		default:
			return nil, errArgumentNumber
		}
		return []string{formatFloat(cmd.Multiplier())}, nil
	},
	"pole": func(cmd *commandContext, args []string) ([]string, error) {
		switch len(args) {
		case 0:
			res, err := cmd.PoleVector()
			if err != nil {
				return nil, err
			}
			return []string{res.Locator + " " + formatVec3(res.Pos)}, nil
		case 9, 10:
			f := make([]float32, len(args))
			for i, a := range args {
				v, err := parseFinite(a)
				if err != nil {
					return nil, err
				}
				f[i] = v
			}
			multiplier := cmd.Multiplier()
			if len(f) == 10 {
				multiplier = f[9]
			}
			pole, err := cmd.PoleVectorAt(
				mat.NewVec3(f[0], f[1], f[2]),
				mat.NewVec3(f[3], f[4], f[5]),
				mat.NewVec3(f[6], f[7], f[8]),
				multiplier,
			)
			if err != nil {
				return nil, err
			}
			return []string{formatVec3(pole)}, nil
		default:
			return nil, errArgumentNumber
		}
	},
	"load": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 1 {
			return nil, errArgumentNumber
		}
		if err := cmd.LoadScene(args[0]); err != nil {
			return nil, err
		}
		return nil, nil
	},
	"save": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 1 {
			return nil, errArgumentNumber
		}
		if err := cmd.SaveScene(args[0]); err != nil {
			return nil, err
		}
		return nil, nil
	},
	"export": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 1 {
			return nil, errArgumentNumber
		}
		if err := cmd.ExportPCD(args[0]); err != nil {
			return nil, err
		}
		return nil, nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	res, err := fn(c.cmd, args[1:])
	if err != nil {
		return "", err
	}
	return strings.Join(res, "\n"), nil
}

func parseVec3(args []string) (mat.Vec3, error) {
	if len(args) != 3 {
		return mat.Vec3{}, errArgumentNumber
	}
	var p mat.Vec3
	for i, a := range args {
		v, err := parseFinite(a)
		if err != nil {
			return mat.Vec3{}, err
		}
		p[i] = v
	}
	return p, nil
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', 3, 32)
}

func formatVec3(p mat.Vec3) string {
	return formatFloat(p[0]) + " " + formatFloat(p[1]) + " " + formatFloat(p[2])
}
