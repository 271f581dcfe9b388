// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"github.com/vk/resumedesc/internal/registry"
	"github.com/vk/resumedesc/modules/eslint"
	"github.com/vk/resumedesc/modules/ui"
)

// coreModules is the definitive list of all module capabilities that are
// compiled into the resumedesc binary.
var coreModules = []registry.Module{
	&eslint.Module{},
	&ui.Module{},
}
