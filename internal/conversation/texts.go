package conversation

const (
	msgNoContacts      = "❌ Nenhum contato adicionado ainda."
	msgUnknownAction   = "❌ Ação não reconhecida."
	msgStale           = "⚠️ Essa opção não está mais disponível."
	msgTargetGone      = "⚠️ O contato selecionado não existe mais."
	msgOddLines        = "⚠️ Formato inválido. Cada nome deve ser seguido de um número."
	msgInvalidEdit     = "⚠️ Formato inválido. Envie no formato:\nNome - Categoria\nNúmero"
	msgInvalidPhone    = "❌ Número inválido. Deve ter 10 ou 11 dígitos (DDD + número)."
	msgInvalidPhoneFmt = "❌ Número inválido: %s. Deve ter 10 ou 11 dígitos (DDD + número)."
	msgDuplicateEdit   = "⚠️ Já existe outro contato com esse nome e número."
	msgAddedFmt        = "✅ %d contato(s) adicionados."
	msgDuplicatesFmt   = "\n⚠️ %d contato(s) já existiam e não foram adicionados."
	msgAddedHint       = "\nUse /arquivo para gerar o .vcf."
	msgNoneAdded       = "❌ Nenhum contato válido foi adicionado."
	msgWiped           = "✅ Todos os contatos foram removidos!"
	msgRenderFailed    = "❌ Não foi possível gerar o arquivo. Tente novamente."

	msgWelcomeFmt = "👋 Olá! Envie os contatos no formato:\n\n" +
		"Nome 1\nNúmero 1\nNome 2\nNúmero 2\n...\n\n" +
		"Contatos na lista: %d números\n\n" +
		"Para ver todos os comandos e dicas, use /ajuda"

	msgExportMenu = "📤 Escolha o formato em que deseja salvar:"
	msgExportAll  = "📦 Todos os formatos exportados!"

	msgWipePrompt   = "Deseja apagar a lista atual e criar uma nova? (Sim ou Não)"
	msgWipeReprompt = "Olá! Você quer apagar a lista atual para criar uma nova? (Sim ou Não)\n\n" +
		"Se você responder 'Sim', a lista atual será excluída e você pode começar uma nova.\n" +
		"Se responder 'Não', os novos contatos serão adicionados à lista existente."
	msgWipeDone = "✅ Lista apagada! Envie os novos contatos."
	msgWipeKept = "👍 Lista mantida! Envie os contatos para adicionar."

	msgRemoveMenu       = "Remover contatos! Escolha qual você quer ↓"
	msgAskRemoveName    = "🔍 Digite o nome do contato que deseja remover:"
	msgAskNextRemove    = "🔍 Digite o nome do próximo contato para remover:"
	msgNotFound         = "⚠️ Nenhum contato encontrado com esse nome."
	msgConfirmRemoveFmt = "Quer mesmo excluir %s?"
	msgConfirmPickFmt   = "🗑️ Confirmar exclusão de:\n%s?"
	msgManyToRemove     = "🔎 Foram encontrados vários contatos com esse nome — clique em um para apagar:"
	msgRemovedFmt       = "✅ Contato removido:\n%s"
	msgRemoveCanceled   = "❌ Remoção cancelada."

	msgBatchPrompt = "📝 Envie os contatos que deseja remover no formato:\n\n" +
		"Nome 1\nNúmero 1\nNome 2\nNúmero 2\n...\n\n" +
		"⚠️ Os contatos devem estar exatamente como foram salvos."
	msgBatchMore = "📝 Envie mais contatos para remover no formato:\n\n" +
		"Nome 1\nNúmero 1\nNome 2\nNúmero 2\n..."
	msgBatchListFmt  = "📋 Contatos selecionados para remoção:\n\n%s\n\nDeseja confirmar a exclusão ou adicionar mais contatos?"
	msgBatchDoneFmt  = "✅ %d contatos removidos em lote!"
	msgBatchCanceled = "❌ Remoção em lote cancelada."

	msgAskEditName   = "❓ Qual contato você quer editar? Digite o nome exato ou parte dele."
	msgEditingFmt    = "📝 Editando: %s\n\nEnvie os novos dados no formato:\nNome - Categoria\nNúmero\n\nExemplo:\nJoão Silva - Trabalho\n8299610303"
	msgManyToEdit    = "🔎 Foram encontrados vários contatos com esse nome — clique em um para editar:"
	msgEditedFmt     = "✅ Contato editado com sucesso!\n\nAntes: %s\nDepois: %s"
	msgEditCanceled  = "❌ Edição cancelada."
	msgAddPrompt     = "📝 Envie os contatos no formato:\n\nNome\nNúmero\n\n..."
	msgStatsTotalFmt = "📊 Estatísticas:\nTotal: %d contatos\n"
	msgListHeadFmt   = "\n📒 Seus contatos (página %d/%d):\n"
)

var exportCaptions = map[string]string{
	"vcf":  "📇 Aqui estão seus contatos no formato VCF!",
	"csv":  "📊 Aqui estão seus contatos no formato CSV!",
	"json": "📝 Aqui estão seus contatos no formato JSON!",
}

var helpPages = []string{
	"📋 *COMANDOS DISPONÍVEIS*\n\n" +
		"• /start - Mensagem de boas-vindas\n" +
		"• /ajuda - Mostra esta ajuda\n" +
		"• /arquivo - Exportar contatos em vários formatos\n" +
		"• /listar - Ver contatos adicionados\n" +
		"• /remover - Remover contatos\n" +
		"• /editar - Editar um contato\n" +
		"• /apagar - Limpar todos os contatos\n\n" +
		"Use os botões abaixo para navegar ➡️",
	"💡 *DICAS DE FORMATAÇÃO*\n\n" +
		"• Use o formato: Nome - Categoria\n  Ex: João Silva - Trabalho\n\n" +
		"• Categorias ajudam a organizar seus contatos\n\n" +
		"• Números aceitos:\n  - +55 82 9961-0303\n  - 82 9961-0303\n  - 8299610303\n\n" +
		"➡️ Próxima página",
	"📤 *DICAS DE EXPORTAÇÃO*\n\n" +
		"• .VCF - Padrão universal para contatos\n" +
		"• .CSV - Planilhas Excel/Google Sheets\n" +
		"• .JSON - Para desenvolvedores\n\n" +
		"• Use /arquivo para escolher o formato\n\n" +
		"• Faça backup regular dos seus contatos\n\n" +
		"⬅️ Voltar para comandos",
}

// Button labels.
const (
	lblPrev          = "⬅️ Anterior"
	lblNext          = "Próxima ➡️"
	lblSortDefault   = "Padrão"
	lblSortAlpha     = "Ordem ABCD"
	lblVCF           = ".VCF - Para contatos"
	lblCSV           = ".CSV - Para planilhas"
	lblJSON          = ".JSON - Para desenvolvedores"
	lblAll           = "TODOS os formatos"
	lblRemoveOne     = "Apagar 1 contato"
	lblRemoveBatch   = "Apagar contatos em lote"
	lblTryAnother    = "Tentar outro"
	lblCancel        = "Cancelar"
	lblCancelX       = "❌ Cancelar"
	lblRemoveAnother = "Remover outro"
	lblAddContacts   = "Adicionar contatos"
	lblYes           = "Sim"
	lblNo            = "Não"
	lblYesCheck      = "✅ Sim"
	lblNoX           = "❌ Não"
	lblRemoveNext    = "🗑️ Remover outro"
	lblShowContacts  = "📋 Ver contatos"
	lblConfirmBatch  = "✅ Confirmar exclusão"
	lblAddMore       = "➕ Adicionar mais"
	lblEditAnother   = "Editar outro"
	lblBackToMenu    = "Voltar ao menu"
)
