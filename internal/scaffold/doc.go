// Package scaffold materializes project skeletons from embedded templates.
// It powers the "frontforge create" command, producing the directory tree,
// static configuration files, and a minimal working React application, and
// contributes the config emission step to "frontforge setup". Files whose
// names end in .tmpl are rendered with text/template; everything else is
// copied verbatim, which keeps JSX brace syntax out of the template engine.
package scaffold
