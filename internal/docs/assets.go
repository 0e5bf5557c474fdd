package docs

// docsCSS styles the documentation chrome.
const docsCSS = `
*{box-sizing:border-box}
body{margin:0;font-family:Nunito,system-ui,sans-serif;color:#282828;background:#f6f5fb}
.oxd-docs{display:flex;min-height:100vh}
.oxd-docs-nav{width:240px;padding:16px;background:#fff;border-right:1px solid #e8eaef;overflow-y:auto}
.oxd-docs-nav h2{font-size:12px;text-transform:uppercase;color:#64728c;margin:16px 0 4px}
.oxd-docs-nav ul{list-style:none;margin:0;padding:0}
.oxd-docs-nav a{display:block;padding:4px 8px;border-radius:6px;color:inherit;text-decoration:none}
.oxd-docs-nav a.active{background:#ff7b1d;color:#fff}
.oxd-docs-brand{font-weight:700;font-size:18px}
.oxd-docs-main{flex:1;padding:24px 32px}
.oxd-docs-crumb{color:#64728c;margin:0}
.oxd-docs-grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:16px}
.oxd-docs-card{background:#fff;border-radius:12px;padding:16px;display:flex;flex-direction:column;gap:12px}
.oxd-docs-canvas{background:#fff;border-radius:12px;padding:32px;margin:16px 0}
.oxd-docs-error:empty{display:none}
.oxd-docs-error{background:#fff1f0;border:1px solid #eb0910;border-radius:8px;padding:12px;color:#a30006}
.oxd-docs-resolution code,.oxd-docs-args code{font-family:ui-monospace,monospace;font-size:13px}
.oxd-docs-resolution pre{background:#1e1e2e;color:#e0e0e0;padding:12px;border-radius:8px;overflow-x:auto}
.oxd-docs-controls{background:#fff;border-radius:12px;padding:16px;display:grid;gap:8px;max-width:480px}
.oxd-docs-control{display:grid;grid-template-columns:120px 1fr;align-items:center}
`

// componentCSS is a compact rendition of the component theme so that
// previews look like the real components.
const componentCSS = `
.oxd-button{font-family:inherit;font-weight:600;font-size:14px;border:1px solid transparent;border-radius:100px;padding:0 20px;height:36px;cursor:pointer;background:#ff7b1d;color:#fff}
.oxd-button--small{height:28px;padding:0 12px;font-size:12px}
.oxd-button--large{height:44px;padding:0 28px;font-size:16px}
.oxd-button--main{background:#ff7b1d;color:#fff}
.oxd-button--secondary{background:#76bc21;color:#fff}
.oxd-button--danger{background:#eb0910;color:#fff}
.oxd-button--warn{background:#ffa500;color:#fff}
.oxd-button--success{background:#57b030;color:#fff}
.oxd-button--info{background:#0099ff;color:#fff}
.oxd-button--ghost{background:transparent;border-color:#ff7b1d;color:#ff7b1d}
.oxd-button--ghost-info{background:transparent;border-color:#0099ff;color:#0099ff}
.oxd-button--ghost-danger{background:transparent;border-color:#eb0910;color:#eb0910}
.oxd-button--ghost-warn{background:transparent;border-color:#ffa500;color:#ffa500}
.oxd-button--ghost-success{background:transparent;border-color:#57b030;color:#57b030}
.oxd-button--label{background:#f6f5fb;color:#ff7b1d}
.oxd-button--label-info{background:#e5f5ff;color:#0099ff}
.oxd-button--label-danger{background:#ffe5e6;color:#eb0910}
.oxd-button--label-warn{background:#fff4e0;color:#ffa500}
.oxd-button--label-success{background:#eef7ea;color:#57b030}
.oxd-button--disabled,.oxd-button:disabled{opacity:.5;cursor:not-allowed}
.oxd-text{margin:0;font-family:inherit}
.oxd-text--h1{font-size:32px}.oxd-text--h2{font-size:28px}.oxd-text--h3{font-size:24px}
.oxd-text--h4{font-size:20px}.oxd-text--h5{font-size:18px}.oxd-text--h6{font-size:16px}
.oxd-text--default{font-size:14px}
.oxd-textarea{font-family:inherit;font-size:14px;border:1px solid #e8eaef;border-radius:8px;padding:8px 12px;min-height:80px;width:100%}
.oxd-textarea--resize-vertical{resize:vertical}
.oxd-textarea--resize-horizontal{resize:horizontal}
.oxd-textarea--resize-none{resize:none}
.oxd-textarea--error{border-color:#eb0910}
`

// liveScript re-renders the story over the websocket as controls change.
const liveScript = `
(function() {
    'use strict';

    var main = document.querySelector('[data-story]');
    var form = document.getElementById('oxd-controls');
    if (!main || !form) return;
    var story = main.getAttribute('data-story');
    var ws = null;
    var reconnectDelay = 1000;

    function args() {
        var out = {};
        Array.prototype.forEach.call(form.elements, function(el) {
            if (!el.name || el.name === '_form') return;
            if (el.type === 'checkbox') {
                out[el.name] = el.checked;
            } else if (el.value !== '') {
                out[el.name] = el.value;
            }
        });
        return out;
    }

    function text(id, value) {
        var el = document.getElementById(id);
        if (el) el.textContent = value;
    }

    function send() {
        if (!ws || ws.readyState !== 1) return;
        ws.send(JSON.stringify({type: 'render', story: story, args: args()}));
        var params = new URLSearchParams(new FormData(form));
        history.replaceState(null, '', location.pathname + '?' + params.toString());
    }

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + '/ws');
        ws.onopen = function() { reconnectDelay = 1000; };
        ws.onmessage = function(e) {
            var msg;
            try { msg = JSON.parse(e.data); } catch (err) { return; }
            switch (msg.type) {
            case 'render':
                var r = msg.result;
                document.getElementById('oxd-canvas').innerHTML = r.html;
                text('oxd-tag', r.tag);
                text('oxd-classes', r.classes.join(' '));
                text('oxd-markup', r.html);
                document.getElementById('oxd-error').innerHTML = '';
                break;
            case 'error':
                text('oxd-error', msg.error.code + ': ' + msg.error.message + (msg.error.detail ? ' (' + msg.error.detail + ')' : ''));
                break;
            case 'reload':
                location.reload();
                break;
            }
        };
        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, 30000);
                connect();
            }, reconnectDelay);
        };
    }

    form.addEventListener('input', send);
    form.addEventListener('change', send);
    connect();
})();
`
