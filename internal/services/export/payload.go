package export

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"mixget/internal/domain"
)

const (
	// DefaultFormat is the FBX flavour requested for every export.
	DefaultFormat = "fbx7_2019"

	tposeType = "Character"
	tposeMesh = "t-pose"
)

// DefaultPreferences are the motion export preferences the service's web
// client sends: no skin, 30 fps, no keyframe reduction.
func DefaultPreferences() domain.Preferences {
	return domain.Preferences{
		Format:   DefaultFormat,
		Skin:     lo.ToPtr(false),
		FPS:      "30",
		ReduceKF: "0",
	}
}

// BuildTPosePayload requests the character's own mesh in T-pose.
func BuildTPosePayload(ch domain.Character) domain.ExportPayload {
	return domain.ExportPayload{
		CharacterID: ch.ID,
		ProductName: ch.Name,
		Type:        tposeType,
		Preferences: domain.Preferences{Format: DefaultFormat, Mesh: tposeMesh},
		GMSHash:     nil,
	}
}

// BuildAnimationPayload turns a product detail record into an export request
// for characterID.
func BuildAnimationPayload(characterID domain.CharacterID, d domain.AnimationDescriptor, prefs domain.Preferences) (domain.ExportPayload, error) {
	hash, err := NormalizeGMSHash(d.Details.GMSHash)
	if err != nil {
		return domain.ExportPayload{}, fmt.Errorf("animation %s (%q): %w", d.ID, d.Description, err)
	}
	return domain.ExportPayload{
		CharacterID: characterID,
		ProductName: d.Description,
		Type:        d.Type,
		Preferences: prefs,
		GMSHash:     []domain.GMSHash{hash},
	}, nil
}

// NormalizeGMSHash rewrites the fields the export endpoint expects in a
// different shape from the detail endpoint: params become a comma-joined
// string of each record's trailing value, overdrive is zeroed and trim becomes
// an integer pair. The input is not modified.
func NormalizeGMSHash(raw domain.GMSHash) (domain.GMSHash, error) {
	if raw == nil {
		return nil, fmt.Errorf("missing gms_hash")
	}
	out := make(domain.GMSHash, len(raw)+3)
	for k, v := range raw {
		out[k] = v
	}

	params, err := JoinParams(raw["params"])
	if err != nil {
		return nil, fmt.Errorf("gms_hash params: %w", err)
	}
	trim, err := NormalizeTrim(raw["trim"])
	if err != nil {
		return nil, fmt.Errorf("gms_hash trim: %w", err)
	}

	out["params"] = params
	out["overdrive"] = 0
	out["trim"] = trim
	return out, nil
}

// JoinParams takes a list of parameter records (each a list ending in a
// number) and returns the trailing values as integers joined by commas, in
// input order.
func JoinParams(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	records, ok := v.([]any)
	if !ok {
		return "", fmt.Errorf("want a list, got %T", v)
	}
	values := make([]string, 0, len(records))
	for i, rec := range records {
		fields, ok := rec.([]any)
		if !ok || len(fields) == 0 {
			return "", fmt.Errorf("record %d: want a non-empty list, got %v", i, rec)
		}
		n, err := toInt(lo.LastOrEmpty(fields))
		if err != nil {
			return "", fmt.Errorf("record %d: %w", i, err)
		}
		values = append(values, strconv.Itoa(n))
	}
	return strings.Join(values, ","), nil
}

// NormalizeTrim coerces a two-element range into an integer pair, keeping
// order.
func NormalizeTrim(v any) ([2]int, error) {
	bounds, ok := v.([]any)
	if !ok || len(bounds) < 2 {
		return [2]int{}, fmt.Errorf("want a two-element range, got %v", v)
	}
	var out [2]int
	for i := range out {
		n, err := toInt(bounds[i])
		if err != nil {
			return [2]int{}, fmt.Errorf("bound %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// toInt converts a decoded JSON scalar to an int, truncating fractions.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n)
		}
		return truncate(f)
	case float64:
		return truncate(n)
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n)
		}
		return truncate(f)
	default:
		return 0, fmt.Errorf("not a number: %v (%T)", v, v)
	}
}

func truncate(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %v", f)
	}
	return int(f), nil
}
