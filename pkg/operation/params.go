// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/enumerize/pkg/config"
	"github.com/walteh/enumerize/pkg/enumgen"
	"github.com/walteh/enumerize/pkg/prompt"
	"gitlab.com/tozd/go/errors"
)

// Prompt identifiers, usable as preset answer keys
const (
	PromptName = "name"
	PromptKeys = "keys"
	PromptSort = "sort"
)

var (
	nameInput = prompt.InputOptions{
		ID:          PromptName,
		Prompt:      "Enter enum name",
		Placeholder: "MyEnum",
	}
	keysInput = prompt.InputOptions{
		ID:          PromptKeys,
		Prompt:      "Enter enum data keys separated by commas or spaces",
		Placeholder: "firstKey,secondKey",
	}
	sortSelect = prompt.SelectOptions{
		ID:      PromptSort,
		Prompt:  "Sort values",
		Options: enumgen.SortLabels(),
	}
)

// step is one parameter prompt. It applies its value to params and reports
// whether the user answered.
type step struct {
	id  string
	ask func(ctx context.Context, p prompt.Prompter, params *enumgen.Params) (bool, error)
	// fallback applies the value used for a cancelled prompt under CancelDefault
	fallback func(params *enumgen.Params)
}

var steps = []step{
	{
		id: PromptName,
		ask: func(ctx context.Context, p prompt.Prompter, params *enumgen.Params) (bool, error) {
			v, ok, err := p.Input(ctx, nameInput)
			if ok {
				params.Name = v
			}
			return ok, err
		},
		fallback: func(params *enumgen.Params) { params.Name = "" },
	},
	{
		id: PromptKeys,
		ask: func(ctx context.Context, p prompt.Prompter, params *enumgen.Params) (bool, error) {
			v, ok, err := p.Input(ctx, keysInput)
			if ok {
				params.DataKeys = enumgen.ParseDataKeys(v)
			}
			return ok, err
		},
		fallback: func(params *enumgen.Params) { params.DataKeys = []string{} },
	},
	{
		id: PromptSort,
		ask: func(ctx context.Context, p prompt.Prompter, params *enumgen.Params) (bool, error) {
			v, ok, err := p.Select(ctx, sortSelect)
			if !ok || err != nil {
				return ok, err
			}
			mode, err := enumgen.ParseSortMode(v)
			if err != nil {
				return false, err
			}
			params.Sort = mode
			return true, nil
		},
		fallback: func(params *enumgen.Params) { params.Sort = enumgen.SortNone },
	},
}

// 🗨️ CollectParams asks for the enum name, the data keys and the sort mode,
// in that order. Under CancelAbort the first cancelled prompt stops the
// pipeline with ErrCancelled; under CancelDefault it substitutes an empty
// value and carries on.
func CollectParams(ctx context.Context, p prompt.Prompter, policy config.CancelPolicy) (enumgen.Params, error) {
	logger := zerolog.Ctx(ctx)

	params := enumgen.Params{DataKeys: []string{}}
	for _, s := range steps {
		ok, err := s.ask(ctx, p, &params)
		if err != nil {
			return enumgen.Params{}, errors.Errorf("prompting for %s: %w", s.id, err)
		}
		if ok {
			continue
		}

		if policy == config.CancelDefault {
			logger.Debug().Str("prompt", s.id).Msg("prompt cancelled, using default")
			s.fallback(&params)
			continue
		}

		logger.Debug().Str("prompt", s.id).Msg("prompt cancelled, aborting")
		return enumgen.Params{}, errors.Errorf("%s prompt: %w", s.id, ErrCancelled)
	}

	return params, nil
}

// PresetAnswers converts flag values into preset prompt answers. Empty
// pointers leave the prompt interactive.
func PresetAnswers(name, keys *string, sort *enumgen.SortMode) map[string]string {
	answers := map[string]string{}
	if name != nil {
		answers[PromptName] = *name
	}
	if keys != nil {
		answers[PromptKeys] = *keys
	}
	if sort != nil {
		answers[PromptSort] = sort.Label()
	}
	return answers
}
