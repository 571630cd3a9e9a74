package conversation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/savecnt/internal/domain"
)

// ErrUnknownAction is returned by ParseAction for tags no flow handles.
var ErrUnknownAction = errors.New("unknown action")

// ActionKind is the name part of an action tag. Its values are the wire
// format of button callbacks and must not change.
type ActionKind string

const (
	// Commands.
	ActionStart  ActionKind = "start"
	ActionHelp   ActionKind = "ajuda"
	ActionExport ActionKind = "arquivo"
	ActionList   ActionKind = "listar"
	ActionRemove ActionKind = "remover"
	ActionEdit   ActionKind = "editar"
	ActionWipe   ActionKind = "apagar"

	// Navigation.
	ActionHelpPage ActionKind = "ajuda_pagina"
	ActionListPage ActionKind = "pagina"
	ActionSetSort  ActionKind = "alterar_ordenacao"

	ActionExportFormat ActionKind = "exportar"
	ActionExportAll    ActionKind = "exportar_todos"

	// Single removal.
	ActionBeginRemoveOne   ActionKind = "remover_um"
	ActionPickRemove       ActionKind = "selecionar_remover"
	ActionConfirmRemove    ActionKind = "confirmar_remover"
	ActionDeclineRemove    ActionKind = "cancelar_remover"
	ActionCancelRemovePick ActionKind = "cancelar_remocao"
	ActionRemoveAnother    ActionKind = "remover_outra"

	// Batch removal.
	ActionBeginRemoveBatch ActionKind = "remover_lote"
	ActionConfirmBatch     ActionKind = "confirmar_lote"
	ActionContinueBatch    ActionKind = "continuar_lote"
	ActionCancelBatch      ActionKind = "cancelar_lote"

	// Editing.
	ActionPickEdit    ActionKind = "selecionar_editar"
	ActionEditAnother ActionKind = "editar_outro"
	ActionCancelEdit  ActionKind = "cancelar_edicao"

	ActionShowContacts ActionKind = "ver_contatos"
	ActionAddContacts  ActionKind = "adicionar_contatos"
)

var plainActions = map[ActionKind]bool{
	ActionStart: true, ActionHelp: true, ActionExport: true, ActionList: true,
	ActionRemove: true, ActionEdit: true, ActionWipe: true,
	ActionExportAll:      true,
	ActionBeginRemoveOne: true, ActionConfirmRemove: true, ActionDeclineRemove: true,
	ActionCancelRemovePick: true, ActionRemoveAnother: true,
	ActionBeginRemoveBatch: true, ActionConfirmBatch: true, ActionContinueBatch: true,
	ActionCancelBatch: true,
	ActionEditAnother: true, ActionCancelEdit: true,
	ActionShowContacts: true, ActionAddContacts: true,
}

var indexedActions = map[ActionKind]bool{
	ActionHelpPage:   true,
	ActionListPage:   true,
	ActionPickRemove: true,
	ActionPickEdit:   true,
}

var commands = []ActionKind{
	ActionStart, ActionHelp, ActionExport, ActionList, ActionRemove, ActionEdit, ActionWipe,
}

// Action is a parsed button press or command.
type Action struct {
	Kind   ActionKind
	Arg    int                 // page or contact index for indexed kinds
	Sort   domain.SortMode     // ActionSetSort only
	Format domain.ExportFormat // ActionExportFormat only
}

// ParseAction parses an action tag such as "pagina:2",
// "alterar_ordenacao:alfabetica:0" or "exportar_csv".
func ParseAction(tag string) (Action, error) {
	head, rest, hasArgs := strings.Cut(tag, ":")
	kind := ActionKind(head)

	switch {
	case !hasArgs && plainActions[kind]:
		return Action{Kind: kind}, nil

	case !hasArgs && strings.HasPrefix(head, string(ActionExportFormat)+"_"):
		f, err := domain.ParseExportFormat(strings.TrimPrefix(head, string(ActionExportFormat)+"_"))
		if err != nil {
			break
		}
		return Action{Kind: ActionExportFormat, Format: f}, nil

	case hasArgs && indexedActions[kind]:
		n, err := strconv.Atoi(rest)
		if err != nil {
			break
		}
		return Action{Kind: kind, Arg: n}, nil

	case hasArgs && kind == ActionSetSort:
		mode, page, ok := strings.Cut(rest, ":")
		if !ok {
			break
		}
		s, err := domain.ParseSortMode(mode)
		if err != nil {
			break
		}
		n, err := strconv.Atoi(page)
		if err != nil {
			break
		}
		return Action{Kind: kind, Sort: s, Arg: n}, nil
	}
	return Action{}, fmt.Errorf("%q: %w", tag, ErrUnknownAction)
}

// Tag is the inverse of ParseAction.
func (a Action) Tag() string {
	switch {
	case a.Kind == ActionExportFormat:
		return string(ActionExportFormat) + "_" + string(a.Format)
	case a.Kind == ActionSetSort:
		return fmt.Sprintf("%s:%s:%d", a.Kind, a.Sort, a.Arg)
	case indexedActions[a.Kind]:
		return fmt.Sprintf("%s:%d", a.Kind, a.Arg)
	}
	return string(a.Kind)
}

// CommandAction recognizes "/listar" and "/listar@SomeBot". Matching is
// case-insensitive.
func CommandAction(text string) (Action, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") || strings.ContainsAny(text, " \n") {
		return Action{}, false
	}
	name, _, _ := strings.Cut(strings.ToLower(text[1:]), "@")
	for _, c := range commands {
		if string(c) == name {
			return Action{Kind: c}, true
		}
	}
	return Action{}, false
}

// Commands lists the slash commands with their menu descriptions.
func Commands() []Command {
	return []Command{
		{Name: string(ActionStart), Description: "Mensagem de boas-vindas"},
		{Name: string(ActionHelp), Description: "Mostra a ajuda"},
		{Name: string(ActionExport), Description: "Exportar contatos em vários formatos"},
		{Name: string(ActionList), Description: "Ver contatos adicionados"},
		{Name: string(ActionRemove), Description: "Remover contatos"},
		{Name: string(ActionEdit), Description: "Editar um contato"},
		{Name: string(ActionWipe), Description: "Limpar todos os contatos"},
	}
}

// Command is a slash command advertised by a transport.
type Command struct {
	Name        string
	Description string
}
