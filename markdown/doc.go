// Package markdown defines the formatting action vocabulary shared by
// keyboard shortcuts, toolbars, and formatting backends, plus the Actions
// contract a formatting backend implements. The mutation algorithms
// themselves live behind that contract, outside this module.
package markdown
