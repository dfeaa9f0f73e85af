// Package conference - instance records and the JSON file format.
//
// An instance file is a JSON array of records:
//
//	[
//	  {
//	    "id": "instance_000",
//	    "nplaces": 3,
//	    "ntimes": 4,
//	    "activities": [ {"priority": 17, "topic": 2}, … ]
//	  },
//	  …
//	]
//
// Loading validates shape and value ranges up front so that a malformed
// file fails fast, before any schedule grid is constructed.
package conference

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/tidwall/gjson"

	"github.com/BartMassey/time-scheduler/schedule"
)

// ErrBadInstanceFile indicates an instance file that is not valid JSON or
// does not match the documented record shape.
var ErrBadInstanceFile = errors.New("conference: malformed instance file")

// Instance is one scheduling problem: a grid shape plus the ordered
// activity sequence to place into it.
type Instance struct {
	ID         string     `json:"id"`
	Places     int        `json:"nplaces"`
	Times      int        `json:"ntimes"`
	Activities []Activity `json:"activities"`
}

// NewSchedule builds the initial schedule for the instance: activities
// fill grid cells in row-major order, the remainder lands in the
// unscheduled pool.
func (in *Instance) NewSchedule() *schedule.Schedule[Activity] {
	return schedule.New(in.Places, in.Times, in.Activities)
}

// LoadInstances reads and parses an instance file.
func LoadInstances(path string) ([]Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conference: read %s: %w", path, err)
	}

	return ParseInstances(data)
}

// ParseInstances parses a JSON array of instance records, validating shape
// and ranges. Any defect is reported as ErrBadInstanceFile (wrapped with
// position detail).
func ParseInstances(data []byte) ([]Instance, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrBadInstanceFile)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: top level must be an array", ErrBadInstanceFile)
	}

	var (
		out  []Instance
		err  error
		item int
	)
	root.ForEach(func(_, v gjson.Result) bool {
		var inst Instance
		inst, err = parseInstance(v)
		if err != nil {
			err = fmt.Errorf("%w: record %d: %v", ErrBadInstanceFile, item, err)

			return false
		}
		out = append(out, inst)
		item++

		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// isInt reports whether v is a JSON number with no fractional part.
// gjson's Int() would silently truncate 1.5 to 1 otherwise.
func isInt(v gjson.Result) bool {
	return v.Type == gjson.Number && v.Num == math.Trunc(v.Num)
}

// parseInstance validates one record. All four fields are required;
// dimensions must be non-negative, priorities non-negative, topics positive,
// and every numeric field must be a whole number.
func parseInstance(v gjson.Result) (Instance, error) {
	if !v.IsObject() {
		return Instance{}, errors.New("not an object")
	}

	var (
		id     = v.Get("id")
		places = v.Get("nplaces")
		times  = v.Get("ntimes")
		acts   = v.Get("activities")
	)
	if !id.Exists() || id.Type != gjson.String {
		return Instance{}, errors.New("missing or non-string id")
	}
	if !isInt(places) || places.Int() < 0 {
		return Instance{}, errors.New("nplaces must be a non-negative integer")
	}
	if !isInt(times) || times.Int() < 0 {
		return Instance{}, errors.New("ntimes must be a non-negative integer")
	}
	if !acts.Exists() || !acts.IsArray() {
		return Instance{}, errors.New("activities must be an array")
	}

	inst := Instance{
		ID:     id.String(),
		Places: int(places.Int()),
		Times:  int(times.Int()),
	}

	var actErr error
	acts.ForEach(func(_, a gjson.Result) bool {
		pr := a.Get("priority")
		tp := a.Get("topic")
		if !isInt(pr) || pr.Int() < 0 {
			actErr = errors.New("activity priority must be a non-negative integer")

			return false
		}
		if !isInt(tp) || tp.Int() < 1 {
			actErr = errors.New("activity topic must be a positive integer")

			return false
		}
		inst.Activities = append(inst.Activities, Activity{
			Priority: int(pr.Int()),
			Topic:    int(tp.Int()),
		})

		return true
	})
	if actErr != nil {
		return Instance{}, actErr
	}

	return inst, nil
}

// WriteInstances writes instances as pretty-printed JSON, the same shape
// ParseInstances reads back.
func WriteInstances(path string, instances []Instance) error {
	data, err := json.MarshalIndent(instances, "", "  ")
	if err != nil {
		return fmt.Errorf("conference: marshal instances: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("conference: write %s: %w", path, err)
	}

	return nil
}
