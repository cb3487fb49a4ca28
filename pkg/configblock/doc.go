// Package configblock is a goldmark extension that groups code samples of
// the same configuration, written in different syntaxes, into one block.
//
// Authors write a configuration-block directive around fenced code blocks:
//
//	::: configuration-block
//
//	```php
//	$container->setParameter('mailer.transport', 'sendmail');
//	```
//
//	```jinja
//	{{ mailer_transport }}
//	```
//
//	:::
//
// At parse time every code block in the body is paired with its display
// label (see package formats) and the pairs are collected in a single list
// nested inside a ConfigurationBlock node. Anything in the body that is not
// a code block is dropped. A code block whose language is not in the format
// table fails the whole directive.
//
// Rendering depends on the backend selected with WithBackend. The
// structural (HTML) backend wraps the list in
//
//	<div class="configuration-block"> ... </div>
//
// and the flow backend emits nothing for the block itself, leaving the list
// to the host renderer.
package configblock
